package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type input struct {
	Email  string `validate:"omitempty,email"`
	Genre  string `validate:"genre"`
	Amount string `validate:"positive_amount"`
	Env    string `validate:"oneof=dev staging prod"`
}

func TestNewValidator(t *testing.T) {
	valid := input{Email: "alice@example.com", Genre: "SF", Amount: "15000", Env: "dev"}

	tests := []struct {
		name    string
		modify  func(*input)
		wantErr string
	}{
		{
			name:   "valid input",
			modify: func(*input) {},
		},
		{
			name:   "empty email is allowed",
			modify: func(in *input) { in.Email = "" },
		},
		{
			name:    "invalid email",
			modify:  func(in *input) { in.Email = "alice" },
			wantErr: "input.Email must be a valid email address",
		},
		{
			name:    "genre with spaces",
			modify:  func(in *input) { in.Genre = "Science Fiction" },
			wantErr: "input.Genre must be a single word",
		},
		{
			name:    "zero amount",
			modify:  func(in *input) { in.Amount = "0" },
			wantErr: "input.Amount must be a number greater than zero",
		},
		{
			name:    "amount not a number",
			modify:  func(in *input) { in.Amount = "lots" },
			wantErr: "input.Amount must be a number greater than zero",
		},
		{
			name: "multiple errors",
			modify: func(in *input) {
				in.Genre = ""
				in.Env = "qa"
			},
			wantErr: "input.Genre must be a single word; input.Env must be one of [dev staging prod]",
		},
	}

	v := NewValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.modify(&in)

			err := FormatErrors(v.Struct(in))

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
