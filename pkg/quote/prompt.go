package quote

import (
	"fmt"
	"strconv"

	"github.com/swiftstream/site/pkg/llm"
)

const schemaName = "logistics_quote"

// BuildPrompt renders req into the instruction sent to the model.
func BuildPrompt(req Request) string {
	return fmt.Sprintf(`Generate a logistics quote for the following shipment:
Origin: %s
Destination: %s
Weight: %s kg
Dimensions: %s
Transport Type: %s

Provide a realistic estimated cost (USD), transit time, a brief route summary, and a recommendation.
Be professional and act as a senior logistics coordinator.`,
		req.Origin,
		req.Destination,
		strconv.FormatFloat(req.Weight, 'f', -1, 64),
		req.Dimensions,
		req.Type,
	)
}

// ResponseSchema is the shape every quote reply must follow.
func ResponseSchema() llm.Schema {
	return llm.Schema{
		Name: schemaName,
		Properties: map[string]llm.Property{
			"estimatedCost":   {Type: llm.TypeNumber, Description: "Estimated cost in USD"},
			"currency":        {Type: llm.TypeString, Description: "Currency code (e.g. USD)"},
			"transitTimeDays": {Type: llm.TypeString, Description: "Estimated transit time range (e.g. 3-5 days)"},
			"routeSummary":    {Type: llm.TypeString, Description: "Brief description of the route"},
			"recommendation":  {Type: llm.TypeString, Description: "Logistics advice or recommendation"},
		},
		Required: []string{"estimatedCost", "currency", "transitTimeDays", "routeSummary", "recommendation"},
	}
}
