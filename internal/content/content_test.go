package content

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cat := Default()
	require.NoError(t, cat.Validate())

	assert.Len(t, cat.Videos, 3)
	assert.Len(t, cat.Themes, 6)
	assert.Len(t, cat.About, 4)
	assert.Len(t, cat.Resources, 4)
	assert.Equal(t, "A Engenharia por trás das Turbinas", cat.Videos[0].Title)
	assert.Equal(t, "https://images.unsplash.com/photo-1535930248460-c3d3869d0c6d?q=80&w=1000&auto=format&fit=crop", cat.Videos[0].Thumbnail)
}

func TestValidate_ReportsFirstMissingField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Catalog)
		want   string
	}{
		{"video title", func(c *Catalog) { c.Videos[1].Title = " " }, "videos[1]: title is empty"},
		{"video views before description", func(c *Catalog) {
			c.Videos[2].Views = ""
			c.Videos[2].Description = ""
		}, "videos[2]: views is empty"},
		{"duplicate id", func(c *Catalog) { c.Videos[2].ID = "1" }, `videos[2]: duplicate id "1"`},
		{"theme icon", func(c *Catalog) { c.Themes[4].Icon = "" }, "themes[4]: icon is empty"},
		{"about", func(c *Catalog) { c.About[0].Description = "" }, "about[0]: description is empty"},
		{"resource", func(c *Catalog) { c.Resources[3].Label = "" }, "resources[3]: label is empty"},
		{"no videos", func(c *Catalog) { c.Videos = nil }, "no videos"},
		{"latest video", func(c *Catalog) { c.LatestVideo = "" }, "latest_video is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := Default()
			tt.mutate(cat)

			err := cat.Validate()
			require.ErrorIs(t, err, ErrInvalidCatalog)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecode_PartialOverride(t *testing.T) {
	doc := `
latest_video: "Como funcionam as eclusas"
themes:
  - name: Oceanos
    icon: globe
    description: Correntes & Marés
`
	cat, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "Como funcionam as eclusas", cat.LatestVideo)
	require.Len(t, cat.Themes, 1)
	assert.Equal(t, "Oceanos", cat.Themes[0].Name)
	assert.Equal(t, Default().Videos, cat.Videos, "videos keep defaults")
}

func TestDecode_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":    "headline: nope\n",
		"missing field":  "videos:\n  - id: x\n    title: Only a title\n",
		"malformed yaml": "videos: [\n",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestDecode_EmptyDocumentKeepsDefaults(t *testing.T) {
	cat, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cat)
}

func TestEncode_ReadableByDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Default()))

	cat, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Default(), cat)
}

func TestStore_ReplaceOnlyWhenValid(t *testing.T) {
	s, err := NewStore("")
	require.NoError(t, err)

	bad := Default()
	bad.Themes[0].Name = ""
	assert.ErrorIs(t, s.Replace(bad), ErrInvalidCatalog)
	assert.Equal(t, "Mecânica", s.Current().Themes[0].Name)

	good := Default()
	good.Themes[0].Name = "Motores"
	require.NoError(t, s.Replace(good))
	assert.Equal(t, "Motores", s.Current().Themes[0].Name)

	good.Themes[0].Name = "mutated after replace"
	assert.Equal(t, "Motores", s.Current().Themes[0].Name)
}

func TestStore_ReloadKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("latest_video: Primeira\n"), 0o644))

	s, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, "Primeira", s.Current().LatestVideo)

	require.NoError(t, os.WriteFile(path, []byte("latest_video: \"\"\n"), 0o644))
	assert.ErrorIs(t, s.Reload(), ErrInvalidCatalog)
	assert.Equal(t, "Primeira", s.Current().LatestVideo)
}

func TestNewStore_InvalidFile(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("latest_video: Antes\n"), 0o644))

	s, err := NewStore(path)
	require.NoError(t, err)

	w, err := NewWatcher(s, 20*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Close()

	reloaded := make(chan error, 4)
	w.OnReload = func(err error) { reloaded <- err }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(path, []byte("latest_video: Depois\n"), 0o644))

	select {
	case err := <-reloaded:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not reload")
	}
	assert.Equal(t, "Depois", s.Current().LatestVideo)
}
