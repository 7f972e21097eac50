package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// InvalidManifestError is returned when a global.json file is missing,
// unparseable, or does not pin an SDK version. Unrecoverable within a run.
type InvalidManifestError struct {
	Path   string
	Reason string
}

func (e *InvalidManifestError) Error() string {
	return fmt.Sprintf("invalid global.json manifest %s: %s", e.Path, e.Reason)
}

// Manifest is a parsed global.json. Only sdk.version is interpreted; every
// other top-level and sdk-level key is carried through untouched so that a
// rewrite does not drop rollForward, allowPrerelease, msbuild-sdks, or any
// future key.
type Manifest struct {
	path    string
	doc     map[string]json.RawMessage
	sdk     map[string]json.RawMessage
	version string
}

// Load reads and parses the global.json at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InvalidManifestError{Path: path, Reason: err.Error()}
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &InvalidManifestError{Path: path, Reason: fmt.Sprintf("malformed JSON: %v", err)}
	}

	sdkRaw, ok := doc["sdk"]
	if !ok {
		return nil, &InvalidManifestError{Path: path, Reason: "missing sdk section"}
	}

	var sdk map[string]json.RawMessage
	if err := json.Unmarshal(sdkRaw, &sdk); err != nil {
		return nil, &InvalidManifestError{Path: path, Reason: fmt.Sprintf("malformed sdk section: %v", err)}
	}

	var version string
	if raw, ok := sdk["version"]; ok {
		if err := json.Unmarshal(raw, &version); err != nil {
			return nil, &InvalidManifestError{Path: path, Reason: fmt.Sprintf("malformed sdk.version: %v", err)}
		}
	}
	if version == "" {
		return nil, &InvalidManifestError{Path: path, Reason: "missing sdk.version"}
	}

	return &Manifest{
		path:    path,
		doc:     doc,
		sdk:     sdk,
		version: version,
	}, nil
}

func (m *Manifest) Path() string {
	return m.path
}

func (m *Manifest) SDKVersion() string {
	return m.version
}

// SetSDKVersion replaces the pinned SDK version in place.
func (m *Manifest) SetSDKVersion(version string) {
	raw, _ := json.Marshal(version)
	m.sdk["version"] = raw

	sdkRaw, _ := json.Marshal(m.sdk)
	m.doc["sdk"] = sdkRaw

	m.version = version
}

// Save rewrites the manifest at its original path, 2-space indented with a
// trailing newline.
func (m *Manifest) Save() error {
	data, err := json.MarshalIndent(m.doc, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to marshal manifest %s", m.path)
	}
	data = append(data, '\n')

	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write manifest %s", m.path)
	}
	return nil
}
