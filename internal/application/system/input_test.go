package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
)

func TestInputState_Controls(t *testing.T) {
	tests := []struct {
		name  string
		input InputState
		want  entity.Controls
	}{
		{"idle", InputState{}, entity.Controls{}},
		{
			name:  "directions",
			input: InputState{Left: true, Up: true},
			want:  entity.Controls{Left: true, Up: true},
		},
		{
			name:  "held fire is not a shot",
			input: InputState{Fire: true},
			want:  entity.Controls{},
		},
		{
			name:  "fresh fire press",
			input: InputState{Fire: true, FirePressed: true, Confirm: true},
			want:  entity.Controls{FirePressed: true},
		},
		{
			name:  "meta keys are not forwarded",
			input: InputState{Quit: true, Debug: true, Save: true, Right: true, Down: true},
			want:  entity.Controls{Right: true, Down: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Controls())
		})
	}
}

func TestInputSystem_ImplementsInputSource(t *testing.T) {
	var _ InputSource = NewInputSystem()
}
