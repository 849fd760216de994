package modelserver

import (
	jams "github.com/Meesho/BharatMLStack/modelserver-client/pkg/clients/modelserver/client/grpc"
)

// Adapter maps between domain types and the jams_v1 protobuf messages.
type Adapter struct{}

func (Adapter) MapPredictRequestToProto(modelName string, input PredictionInput) *jams.PredictRequest {
	return &jams.PredictRequest{ModelName: modelName, Input: string(input)}
}

func (Adapter) MapProtoToPrediction(resp *jams.PredictResponse) (Prediction, error) {
	return DecodePrediction([]byte(resp.GetOutput()))
}

func (Adapter) MapProtoToModelCatalog(resp *jams.GetModelsResponse) (*ModelCatalog, error) {
	models := make([]ModelMetadata, 0, len(resp.GetModels()))
	for _, m := range resp.GetModels() {
		models = append(models, ModelMetadata{
			Name:        m.GetName(),
			Framework:   m.GetFramework(),
			Path:        m.GetPath(),
			LastUpdated: m.GetLastUpdated(),
		})
	}
	return newModelCatalog(int(resp.GetTotal()), models)
}
