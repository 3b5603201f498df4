package tests

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverPOIs(t *testing.T) {
	w := executeRequest(http.MethodGet, "/v1/pois?query="+url.QueryEscape("cafes in Jaipur"), nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Items []struct {
			Name     string `json:"name"`
			Location string `json:"location"`
			Type     string `json:"type"`
			ImageURL string `json:"image_url"`
			Review   string `json:"review"`
		} `json:"items"`
		Total int `json:"total"`
	}
	decodeBody(t, w, &resp)

	assert.GreaterOrEqual(t, resp.Total, 6)
	assert.LessOrEqual(t, resp.Total, 9)
	for _, p := range resp.Items {
		assert.Equal(t, "Jaipur", p.Location)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Type)
		assert.NotEmpty(t, p.ImageURL)
		assert.NotEmpty(t, p.Review)
	}
}

func TestDiscoverPOIs_MissingQuery(t *testing.T) {
	w := executeRequest(http.MethodGet, "/v1/pois", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
