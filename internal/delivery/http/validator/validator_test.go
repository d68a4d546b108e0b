package validator

import (
	"testing"

	"pawpost/internal/domain/entity"
	domainerrors "pawpost/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type topicRequest struct {
	Topic string `json:"topic" validate:"required,topic"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   any
		wantErr bool
		field   string
	}{
		{
			name:  "valid notification input",
			input: &entity.NotificationInput{Title: "New like", Body: "Rex liked your post", Type: entity.NotificationTypeLike},
		},
		{
			name:    "missing title",
			input:   &entity.NotificationInput{Body: "b", Type: entity.NotificationTypeLike},
			wantErr: true,
			field:   "title",
		},
		{
			name:    "unknown type",
			input:   &entity.NotificationInput{Title: "t", Body: "b", Type: "poke"},
			wantErr: true,
			field:   "type",
		},
		{name: "valid topic", input: &topicRequest{Topic: "pawpost-general"}},
		{name: "topic with slash", input: &topicRequest{Topic: "a/b"}, wantErr: true, field: "topic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, entity.ErrorCodeValidation, domainerrors.ClassifyCode(err))

			var fieldErrs validator.ValidationErrors
			require.True(t, errors.As(err, &fieldErrs))
			assert.Equal(t, tt.field, fieldErrs[0].Field())
		})
	}
}
