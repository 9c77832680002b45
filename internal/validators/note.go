package validators

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/MKhiriev/coffee-notes/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted for field-level scoping. They are the Go field names
// of the request structs.
const (
	FieldID        = "ID"
	FieldCategory  = "Category"
	FieldContent   = "Content"
	FieldSessionID = "SessionID"
	FieldNoteIDs   = "NoteIDs"
)

// categoryTag is the struct tag rule that restricts a field to the known
// note categories.
const categoryTag = "category"

// NoteValidator validates note store requests with go-playground/validator
// struct tags and a custom "category" rule.
type NoteValidator struct {
	validate *validator.Validate
}

// NewNoteValidator constructs a NoteValidator and returns it as Validator.
func NewNoteValidator() Validator {
	v := validator.New()

	// registration only fails for an empty tag or a nil func
	_ = v.RegisterValidation(categoryTag, validateCategory)

	return &NoteValidator{validate: v}
}

// Validate checks one of the note requests, given by value or by pointer.
// Returns ErrUnsupportedType for any other value.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateNoteRequest:
		return v.validateCreate(ctx, value, fields...)
	case *models.CreateNoteRequest:
		return v.validateCreate(ctx, *value, fields...)

	case models.UpdateNoteRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.UpdateNoteRequest:
		return v.validateStruct(ctx, *value, fields...)

	case models.UpdatePositionRequest:
		return v.validatePosition(ctx, value, fields...)
	case *models.UpdatePositionRequest:
		return v.validatePosition(ctx, *value, fields...)

	case models.DeleteNoteRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.DeleteNoteRequest:
		return v.validateStruct(ctx, *value, fields...)

	case models.LikeRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.LikeRequest:
		return v.validateStruct(ctx, *value, fields...)

	case models.CheckLikesRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.CheckLikesRequest:
		return v.validateStruct(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateCreate(ctx context.Context, req models.CreateNoteRequest, fields ...string) error {
	if err := v.validateStruct(ctx, req, fields...); err != nil {
		return err
	}
	if !storable(req.PositionX) || !storable(req.PositionY) {
		return fmt.Errorf("%w: (%v, %v)", ErrInvalidPosition, req.PositionX, req.PositionY)
	}
	return nil
}

func (v *NoteValidator) validatePosition(ctx context.Context, req models.UpdatePositionRequest, fields ...string) error {
	if err := v.validateStruct(ctx, req, fields...); err != nil {
		return err
	}
	if !storable(req.X) || !storable(req.Y) {
		return fmt.Errorf("%w: (%v, %v)", ErrInvalidPosition, req.X, req.Y)
	}
	return nil
}

func (v *NoteValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	if len(fields) == 0 {
		return translate(v.validate.StructCtx(ctx, obj))
	}

	t := reflect.TypeOf(obj)
	for _, f := range fields {
		if _, ok := t.FieldByName(f); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return translate(v.validate.StructPartialCtx(ctx, obj, fields...))
}

// translate maps validator errors onto the package sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	switch fe.Tag() {
	case categoryTag:
		return fmt.Errorf("%w: %v", ErrUnknownCategory, fe.Value())
	case "uuid":
		return fmt.Errorf("%w: %s=%v", ErrInvalidID, fe.Field(), fe.Value())
	}
	return fmt.Errorf("%w: %s", ErrMissingFields, fe.Field())
}

func validateCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).IsValid()
}

// storable reports whether f floors to a value of the INTEGER position
// columns. NaN fails both comparisons.
func storable(f float64) bool {
	fl := math.Floor(f)
	return fl >= math.MinInt32 && fl <= math.MaxInt32
}
