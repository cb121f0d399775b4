package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rohits-web03/filedock/internal/models"
	"github.com/rohits-web03/filedock/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFileType(t *testing.T) {
	cases := []struct {
		name     string
		wantType models.FileType
		wantExt  string
	}{
		{"report.pdf", models.FileTypeDocument, "pdf"},
		{"a.txt", models.FileTypeDocument, "txt"},
		{"Photo.JPEG", models.FileTypeImage, "jpeg"},
		{"clip.final.mkv", models.FileTypeVideo, "mkv"},
		{"song.flac", models.FileTypeAudio, "flac"},
		{"archive.zip", models.FileTypeOther, "zip"},
		{"upload", models.FileTypeOther, ""},
		{"trailing.", models.FileTypeOther, ""},
		{"", models.FileTypeOther, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotType, gotExt := utils.GetFileType(tc.name)
			assert.Equal(t, tc.wantType, gotType)
			assert.Equal(t, tc.wantExt, gotExt)
		})
	}

	t.Run("depends only on the name", func(t *testing.T) {
		t1, e1 := utils.GetFileType("report.pdf")
		t2, e2 := utils.GetFileType("report.pdf")
		assert.Equal(t, t1, t2)
		assert.Equal(t, e1, e2)
	})
}

func TestConstructFileURL(t *testing.T) {
	t.Run("with project", func(t *testing.T) {
		got := utils.ConstructFileURL("https://cdn.example.com/v1/", "bucket", "proj", "abc")
		assert.Equal(t, "https://cdn.example.com/v1/storage/buckets/bucket/files/abc/view?project=proj", got)
	})

	t.Run("without project or base", func(t *testing.T) {
		got := utils.ConstructFileURL("", "bucket", "", "abc")
		assert.Equal(t, "/storage/buckets/bucket/files/abc/view", got)
	})
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	utils.ErrorResponse(w, http.StatusBadRequest, "Missing data")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"error": "Missing data"}, body)
}
