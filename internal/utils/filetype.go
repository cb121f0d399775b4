package utils

import (
	"strings"

	"github.com/rohits-web03/filedock/internal/models"
)

var extensionTypes = map[models.FileType][]string{
	models.FileTypeDocument: {
		"pdf", "doc", "docx", "txt", "xls", "xlsx", "csv", "rtf", "ods", "ppt", "odp",
		"md", "html", "htm", "epub", "pages", "fig", "psd", "ai", "indd", "xd",
		"sketch", "afdesign", "afphoto",
	},
	models.FileTypeImage: {"jpg", "jpeg", "png", "gif", "bmp", "svg", "webp"},
	models.FileTypeVideo: {"mp4", "avi", "mov", "mkv", "webm"},
	models.FileTypeAudio: {"mp3", "wav", "ogg", "flac"},
}

var typeByExtension = func() map[string]models.FileType {
	m := make(map[string]models.FileType)
	for t, exts := range extensionTypes {
		for _, ext := range exts {
			m[ext] = t
		}
	}
	return m
}()

// GetFileType classifies a file by its name alone. The extension is the
// lowercased text after the last dot, or "" when the name has none.
func GetFileType(name string) (models.FileType, string) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return models.FileTypeOther, ""
	}
	ext := strings.ToLower(name[i+1:])
	if t, ok := typeByExtension[ext]; ok {
		return t, ext
	}
	return models.FileTypeOther, ext
}
