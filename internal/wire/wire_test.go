package wire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAckOmitsEmptyField(t *testing.T) {
	b, err := json.Marshal(Msg("ok"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Message":"ok"}`, string(b))

	b, err = json.Marshal(Err("bad"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Error":"bad"}`, string(b))
}

func TestRatingAckKeyHasSpace(t *testing.T) {
	b, err := json.Marshal(RatingAck{Message: "ok", AverageRating: 4.5})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	// "Average Rating" con espacio es el nombre histórico del campo
	assert.Contains(t, m, "Average Rating")
	assert.Equal(t, 4.5, m["Average Rating"])
}
