package assets

import _ "embed"

// SampleDataset is the default dataset, embedded in YAML form.
//
//go:embed dataset/sample.yaml
var SampleDataset []byte
