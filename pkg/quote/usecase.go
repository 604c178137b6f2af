package quote

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/swiftstream/site/pkg/llm"
)

// MsgRequiredFields is shown when origin or destination is missing.
const MsgRequiredFields = "Please fill in all required fields."

type service struct {
	model     llm.CompletionModel
	modelName string
	validate  *validator.Validate
}

// NewService creates the default implementation. modelName is reported, not sent;
// the concrete client carries its own model identifier.
func NewService(model llm.CompletionModel, modelName string) UseCase {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &service{model: model, modelName: modelName, validate: v}
}

func (s *service) Model() string { return s.modelName }

func (s *service) Generate(ctx context.Context, req Request) (Response, error) {
	req.Origin = strings.TrimSpace(req.Origin)
	req.Destination = strings.TrimSpace(req.Destination)
	req.Dimensions = strings.TrimSpace(req.Dimensions)
	if err := s.check(req); err != nil {
		return Response{}, err
	}

	schema := ResponseSchema()
	raw, err := s.model.Complete(ctx, BuildPrompt(req), schema)
	if err != nil {
		if errors.Is(err, llm.ErrEmptyCompletion) {
			return Response{}, ErrEmptyResponse
		}
		return Response{}, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	return ParseResponse(raw, schema)
}

func (s *service) check(req Request) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return ErrValidation(err.Error())
	}
	for _, fe := range verrs {
		if fe.Field() == "origin" || fe.Field() == "destination" {
			return ErrValidation(MsgRequiredFields)
		}
	}
	switch fe := verrs[0]; fe.Field() {
	case "weight":
		return ErrValidation("weight must be greater than 0 kg")
	case "type":
		return ErrValidation("transport type must be one of air, ocean, road, rail")
	default:
		return ErrValidation(fmt.Sprintf("invalid field %s", fe.Field()))
	}
}
