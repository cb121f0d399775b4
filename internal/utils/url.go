package utils

import (
	"net/url"
	"strings"
)

// ConstructFileURL builds the public view URL of a stored object.
func ConstructFileURL(baseURL, bucketID, projectID, fileID string) string {
	u := strings.TrimRight(baseURL, "/") +
		"/storage/buckets/" + url.PathEscape(bucketID) +
		"/files/" + url.PathEscape(fileID) + "/view"
	if projectID != "" {
		u += "?project=" + url.QueryEscape(projectID)
	}
	return u
}
