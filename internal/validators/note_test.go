package validators

import (
	"context"
	"math"
	"testing"

	"github.com/MKhiriev/coffee-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const noteID = "0191f3a2-7c1e-7b4a-9d2e-3f6a8b1c5d70"

func TestNoteValidator_Validate(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		// ── create ──
		{
			name: "create valid",
			obj:  models.CreateNoteRequest{Category: models.Reflection, Content: `{"text":"hi"}`, PositionX: 120.7, PositionY: 300},
		},
		{
			name: "create pointer valid without session",
			obj:  &models.CreateNoteRequest{Category: models.ResourceList, Content: `{"title":"t","items":[]}`},
		},
		{
			name:    "create missing category",
			obj:     models.CreateNoteRequest{Content: "x"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "create unknown category",
			obj:     models.CreateNoteRequest{Category: "meme", Content: "x"},
			wantErr: ErrUnknownCategory,
		},
		{
			name:    "create missing content",
			obj:     models.CreateNoteRequest{Category: models.ActionableAdvice},
			wantErr: ErrMissingFields,
		},
		{
			name:    "create non-finite position",
			obj:     models.CreateNoteRequest{Category: models.ActionableAdvice, Content: "x", PositionX: math.NaN()},
			wantErr: ErrInvalidPosition,
		},
		{
			name:    "create position beyond int32",
			obj:     models.CreateNoteRequest{Category: models.ActionableAdvice, Content: "x", PositionY: 1e10},
			wantErr: ErrInvalidPosition,
		},
		{
			name: "create position floors into int32",
			obj:  models.CreateNoteRequest{Category: models.ActionableAdvice, Content: "x", PositionX: math.MaxInt32 + 0.9, PositionY: math.MinInt32},
		},

		// ── update / position / delete ──
		{name: "update valid", obj: models.UpdateNoteRequest{ID: noteID, Content: "x"}},
		{name: "update missing id", obj: models.UpdateNoteRequest{Content: "x"}, wantErr: ErrMissingFields},
		{name: "position valid at origin", obj: models.UpdatePositionRequest{ID: noteID}},
		{name: "position missing id", obj: &models.UpdatePositionRequest{X: 1, Y: 2}, wantErr: ErrMissingFields},
		{name: "position infinite", obj: models.UpdatePositionRequest{ID: noteID, X: math.Inf(1)}, wantErr: ErrInvalidPosition},
		{name: "position beyond int32", obj: models.UpdatePositionRequest{ID: noteID, X: -1e10}, wantErr: ErrInvalidPosition},
		{name: "position floors below int32", obj: models.UpdatePositionRequest{ID: noteID, X: math.MinInt32 - 0.5}, wantErr: ErrInvalidPosition},
		{name: "update id not a uuid", obj: models.UpdateNoteRequest{ID: "n1", Content: "x"}, wantErr: ErrInvalidID},
		{name: "position id not a uuid", obj: models.UpdatePositionRequest{ID: "n1"}, wantErr: ErrInvalidID},
		{name: "delete valid", obj: models.DeleteNoteRequest{ID: noteID}},
		{name: "delete id not a uuid", obj: models.DeleteNoteRequest{ID: "'; drop table notes; --"}, wantErr: ErrInvalidID},
		{name: "delete missing id", obj: models.DeleteNoteRequest{}, wantErr: ErrMissingFields},

		// ── likes ──
		{name: "like valid", obj: models.LikeRequest{ID: noteID, SessionID: "s"}},
		{name: "like missing session", obj: models.LikeRequest{ID: noteID}, wantErr: ErrMissingFields},
		{name: "like id not a uuid", obj: models.LikeRequest{ID: "n1", SessionID: "s"}, wantErr: ErrInvalidID},
		{name: "check likes valid", obj: models.CheckLikesRequest{NoteIDs: []string{noteID}, SessionID: "s"}},
		{name: "check likes entry not a uuid", obj: models.CheckLikesRequest{NoteIDs: []string{noteID, "n2"}, SessionID: "s"}, wantErr: ErrInvalidID},
		{name: "check likes empty list allowed", obj: models.CheckLikesRequest{NoteIDs: []string{}, SessionID: "s"}},
		{name: "check likes nil list", obj: models.CheckLikesRequest{SessionID: "s"}, wantErr: ErrMissingFields},

		// ── scoping ──
		{
			name:   "scoped to content ignores id",
			obj:    models.UpdateNoteRequest{Content: "x"},
			fields: []string{FieldContent},
		},
		{
			name:    "scoped unknown field",
			obj:     models.DeleteNoteRequest{ID: noteID},
			fields:  []string{"Nope"},
			wantErr: ErrUnknownField,
		},

		{name: "unsupported type", obj: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNoteValidator_AllCategoriesAccepted(t *testing.T) {
	v := NewNoteValidator()
	for _, c := range models.Categories {
		err := v.Validate(context.Background(), models.CreateNoteRequest{Category: c, Content: "x"})
		assert.NoError(t, err, c)
	}
}
