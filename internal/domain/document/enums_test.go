package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestType_IsValid(t *testing.T) {
	assert.True(t, TypeInvoice.IsValid())
	assert.True(t, TypePackingSlip.IsValid())
	assert.False(t, Type("receipt").IsValid())
	assert.False(t, Type("").IsValid())
}

func TestParseType_DefaultsToInvoice(t *testing.T) {
	assert.Equal(t, TypePackingSlip, ParseType("packing"))
	assert.Equal(t, TypeInvoice, ParseType("invoice"))
	assert.Equal(t, TypeInvoice, ParseType("unknown"))
	assert.Equal(t, TypeInvoice, ParseType(""))
}

func TestType_FileSlug(t *testing.T) {
	assert.Equal(t, "invoice", TypeInvoice.FileSlug())
	assert.Equal(t, "packing-slip", TypePackingSlip.FileSlug())
}

func TestMode_RequiresEngine(t *testing.T) {
	assert.False(t, ModePrint.RequiresEngine())
	assert.True(t, ModeView.RequiresEngine())
	assert.True(t, ModeDownload.RequiresEngine())
}

func TestMode_IsValid(t *testing.T) {
	assert.True(t, ModePrint.IsValid())
	assert.True(t, ModeView.IsValid())
	assert.True(t, ModeDownload.IsValid())
	assert.False(t, Mode("pdf").IsValid())
}
