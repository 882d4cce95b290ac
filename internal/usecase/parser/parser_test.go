package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	requestv1 "github.com/quaystack/ladderbook/internal/domain/request/v1"
	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
)

func TestTokenize_TrimsAndStripsCRLF(t *testing.T) {
	got := Tokenize(" N, 1 ,2\r\n")
	assert.Equal(t, []string{"N", "1", "2"}, got)
}

func TestParseLine_New(t *testing.T) {
	cmd, err := ParseLine("N,1,100,IBM,L,B,10.50,25")
	require.NoError(t, err)

	req, ok := cmd.(requestv1.NewOrder)
	require.True(t, ok)
	assert.Equal(t, typesv1.OrderId(1), req.ID)
	assert.Equal(t, typesv1.Price(1050), req.Price)
	assert.Equal(t, int64(25), req.Quantity)
	assert.Equal(t, typesv1.Buy, req.Side)
	assert.Equal(t, typesv1.Limit, req.Type)
}

func TestParseLine_NewWrongFieldCount(t *testing.T) {
	_, err := ParseLine("N,1,100,IBM,L,B,10.50")
	assert.Error(t, err)
}

func TestParseLine_CancelExactThreeFields(t *testing.T) {
	cmd, err := ParseLine("X,1,100")
	require.NoError(t, err)
	req := cmd.(requestv1.Cancel)
	assert.Equal(t, typesv1.OrderId(1), req.ID)
}

func TestParseLine_AmendPartialFields(t *testing.T) {
	cmd, err := ParseLine("A,1,100,IBM,L,B,,15")
	require.NoError(t, err)

	req := cmd.(requestv1.Amend)
	assert.Nil(t, req.NewPrice)
	require.NotNil(t, req.NewQuantity)
	assert.Equal(t, int64(15), *req.NewQuantity)
}

func TestParseLine_MatchWithoutSymbol(t *testing.T) {
	cmd, err := ParseLine("M,100")
	require.NoError(t, err)
	req := cmd.(requestv1.Match)
	assert.Equal(t, typesv1.Symbol(""), req.Symbol)
}

func TestParseLine_MatchWithSymbol(t *testing.T) {
	cmd, err := ParseLine("M,100,IBM")
	require.NoError(t, err)
	req := cmd.(requestv1.Match)
	assert.Equal(t, typesv1.Symbol("IBM"), req.Symbol)
}

func TestParseLine_RejectsTrailingJunkInInteger(t *testing.T) {
	_, err := ParseLine("X,1a,100")
	assert.Error(t, err)
}

func TestParseLine_RejectsLeadingPlus(t *testing.T) {
	_, err := ParseLine("X,+1,100")
	assert.Error(t, err)
}

func TestParseLine_RejectsPriceWithoutTwoFractionalDigits(t *testing.T) {
	_, err := ParseLine("N,1,100,IBM,L,B,10.5,25")
	assert.Error(t, err)
}

func TestParseLine_RejectsUnknownCommandLetter(t *testing.T) {
	_, err := ParseLine("Z,1,2")
	assert.Error(t, err)
}
