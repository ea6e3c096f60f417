package model

// AssetID identifies an asset within a single graph build.
type AssetID uint

// Mapping associates each declared dependency reference with the ID of the
// asset it resolved to.
type Mapping map[string]AssetID

// Asset is one source file after parsing and lowering.
type Asset struct {
	ID           AssetID  `json:"id" yaml:"id"`
	Filename     Path     `json:"filename" yaml:"filename"`
	Code         string   `json:"code" yaml:"code"`
	Dependencies []string `json:"dependencies" yaml:"dependencies"`
	// Mapping is nil until the graph builder has processed Dependencies.
	Mapping Mapping `json:"mapping" yaml:"mapping"`
}

// Resolved reports whether the graph builder has attached a mapping.
func (a Asset) Resolved() bool {
	return a.Mapping != nil
}
