package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptIsEmbedded(t *testing.T) {
	data, err := GetFile(ScriptName)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SCROLL_OFFSET = 100")
	assert.Contains(t, FileNames(), ScriptName)
}

func TestHandler_ServesScript(t *testing.T) {
	srv := httptest.NewServer(http.StripPrefix("/assets/", Handler()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/assets/" + ScriptName)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "data-chat")
}
