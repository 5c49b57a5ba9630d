package banner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClass(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		want    string
	}{
		{"success", Success, "bg-green-100 text-green-800"},
		{"error", Error, "bg-red-100 text-red-800"},
		{"info", Info, "bg-blue-100 text-blue-800"},
		{"unknown falls through to info", Variant("warning"), "bg-blue-100 text-blue-800"},
		{"empty falls through to info", Variant(""), "bg-blue-100 text-blue-800"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Class(tt.variant))
		})
	}
}

func TestText(t *testing.T) {
	assert.Equal(t, "Sale ends Friday", Text("Sale ends Friday"))
	assert.Equal(t, DefaultMessage, Text(""))
}
