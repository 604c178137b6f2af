package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptContainsEveryField(t *testing.T) {
	cases := []Request{
		{Origin: "Shanghai, CN", Destination: "Los Angeles, USA", Weight: 10, Dimensions: "120x80x100 cm", Type: TransportOcean},
		{Origin: "Berlin", Destination: "Warsaw", Weight: 2.75, Type: TransportRoad},
		{Origin: "São Paulo", Destination: "Lagos", Weight: 15000, Dimensions: "2 x 40ft", Type: TransportRail},
	}
	for _, req := range cases {
		p := BuildPrompt(req)
		assert.Contains(t, p, "Origin: "+req.Origin)
		assert.Contains(t, p, "Destination: "+req.Destination)
		assert.Contains(t, p, req.Dimensions)
		assert.Contains(t, p, "Transport Type: "+string(req.Type))
		assert.Contains(t, p, "senior logistics coordinator")
	}
	assert.Contains(t, BuildPrompt(cases[1]), "Weight: 2.75 kg")
	assert.Contains(t, BuildPrompt(cases[2]), "Weight: 15000 kg")
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	req := Request{Origin: "A", Destination: "B", Weight: 1, Type: TransportAir}
	assert.Equal(t, BuildPrompt(req), BuildPrompt(req))
}

func TestResponseSchemaRequiresAllFields(t *testing.T) {
	s := ResponseSchema()
	assert.Equal(t, "logistics_quote", s.Name)
	assert.ElementsMatch(t, []string{"estimatedCost", "currency", "transitTimeDays", "routeSummary", "recommendation"}, s.Required)
	assert.Equal(t, "number", s.Properties["estimatedCost"].Type)
	for _, k := range []string{"currency", "transitTimeDays", "routeSummary", "recommendation"} {
		assert.Equal(t, "string", s.Properties[k].Type, k)
	}
	js := s.JSONSchema()
	assert.Equal(t, "object", js["type"])
	assert.Equal(t, false, js["additionalProperties"])
}
