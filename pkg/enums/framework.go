package enums

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Framework is the ML framework a model was built with. Its name prefixes
// model identifiers on AddModel, e.g. "tensorflow-my_model".
type Framework uint8

const (
	FrameworkUnknown Framework = iota
	FrameworkTensorflow
	FrameworkTorch
	FrameworkPytorch
	FrameworkCatboost
	FrameworkLightgbm
	FrameworkXgboost
)

var (
	frameworkName = map[uint8]string{
		0: "unknown",
		1: "tensorflow",
		2: "torch",
		3: "pytorch",
		4: "catboost",
		5: "lightgbm",
		6: "xgboost",
	}

	frameworkValue = map[string]Framework{
		"unknown":    FrameworkUnknown,
		"tensorflow": FrameworkTensorflow,
		"torch":      FrameworkTorch,
		"pytorch":    FrameworkPytorch,
		"catboost":   FrameworkCatboost,
		"lightgbm":   FrameworkLightgbm,
		"xgboost":    FrameworkXgboost,
	}

	// file extension of the saved artifact inside a bundle; tensorflow
	// bundles a SavedModel directory and catboost a bare cbm file
	frameworkArtifactExt = map[Framework]string{
		FrameworkTensorflow: "",
		FrameworkTorch:      ".pt",
		FrameworkPytorch:    ".pt",
		FrameworkCatboost:   "",
		FrameworkLightgbm:   ".txt",
		FrameworkXgboost:    ".json",
	}
)

func (f Framework) String() string {
	if name, ok := frameworkName[uint8(f)]; ok {
		return name
	}
	return frameworkName[0]
}

// ArtifactExt returns the extension the server expects for the saved model.
func (f Framework) ArtifactExt() string {
	return frameworkArtifactExt[f]
}

// ModelName prefixes name with the framework, which is the identifier the
// server expects on AddModel.
func (f Framework) ModelName(name string) string {
	return f.String() + "-" + name
}

// MarshalJSON marshals the enum as a quoted json string
func (f Framework) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON unmarshals a quoted json string to the enum value
func (f *Framework) UnmarshalJSON(data []byte) (err error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f, err = ParseFramework(s)
	return err
}

// ParseFramework converts a string to a Framework, returning an error if the
// string is unknown.
func ParseFramework(s string) (Framework, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	value, ok := frameworkValue[s]
	if !ok || value == FrameworkUnknown {
		return FrameworkUnknown, fmt.Errorf("%q is not a valid Framework", s)
	}
	return value, nil
}

// SplitModelName splits a prefixed identifier like "lightgbm-iris" into its
// framework and bare model name.
func SplitModelName(prefixed string) (Framework, string, error) {
	prefix, name, ok := strings.Cut(prefixed, "-")
	if !ok || name == "" {
		return FrameworkUnknown, "", fmt.Errorf("%q is not prefixed with a framework", prefixed)
	}
	f, err := ParseFramework(prefix)
	if err != nil {
		return FrameworkUnknown, "", err
	}
	return f, name, nil
}
