package recommend

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
)

// Schema returns the JSON schema of a successful recommendation response.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}

	schema := reflector.Reflect([]Item{})
	schema.Title = "Recommendations"
	schema.Description = "Assessments ordered by decreasing relevance"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}
