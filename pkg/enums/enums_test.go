package enums

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFramework(t *testing.T) {
	for name, want := range map[string]Framework{
		"tensorflow": FrameworkTensorflow,
		" TORCH ":    FrameworkTorch,
		"pytorch":    FrameworkPytorch,
		"catboost":   FrameworkCatboost,
		"lightgbm":   FrameworkLightgbm,
		"xgboost":    FrameworkXgboost,
	} {
		got, err := ParseFramework(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got)
	}

	_, err := ParseFramework("sklearn")
	assert.EqualError(t, err, `"sklearn" is not a valid Framework`)
	_, err = ParseFramework("unknown")
	assert.Error(t, err)
}

func TestFramework_ModelName(t *testing.T) {
	assert.Equal(t, "tensorflow-my_awesome_penguin_model", FrameworkTensorflow.ModelName("my_awesome_penguin_model"))
	assert.Equal(t, ".txt", FrameworkLightgbm.ArtifactExt())
	assert.Equal(t, "", FrameworkTensorflow.ArtifactExt())
	assert.Equal(t, "unknown", Framework(42).String())
}

func TestSplitModelName(t *testing.T) {
	f, name, err := SplitModelName("pytorch-my_awesome_californiahousing_model")
	require.NoError(t, err)
	assert.Equal(t, FrameworkPytorch, f)
	assert.Equal(t, "my_awesome_californiahousing_model", name)

	_, _, err = SplitModelName("titanic_model")
	assert.Error(t, err)
	_, _, err = SplitModelName("sklearn-model")
	assert.Error(t, err)
}

func TestFramework_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		F Framework `json:"f"`
	}{FrameworkCatboost})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":"catboost"}`, string(data))

	var out struct {
		F Framework `json:"f"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"f":"xgboost"}`), &out))
	assert.Equal(t, FrameworkXgboost, out.F)
	assert.Error(t, json.Unmarshal([]byte(`{"f":"nope"}`), &out))
}

func TestParseTransport(t *testing.T) {
	tr, err := ParseTransport("GRPC")
	require.NoError(t, err)
	assert.Equal(t, TransportGRPC, tr)

	require.NoError(t, tr.UnmarshalText([]byte("http")))
	assert.Equal(t, TransportHTTP, tr)

	_, err = ParseTransport("websocket")
	assert.Error(t, err)

	data, err := json.Marshal(TransportGRPC)
	require.NoError(t, err)
	assert.Equal(t, `"grpc"`, string(data))
}
