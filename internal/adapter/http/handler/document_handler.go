package handler

import (
	"strings"

	"marketplace-integrations/internal/adapter/storage/objectstore"
	"marketplace-integrations/pkg/apperror"
	"marketplace-integrations/pkg/response"

	"github.com/gin-gonic/gin"
)

// DocumentSource returns stored shipping documents by key.
type DocumentSource interface {
	Get(key string) (objectstore.Document, bool)
}

// Document handles GET /documents/*key for the in-process document store.
func Document(docs DocumentSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimPrefix(c.Param("key"), "/")
		doc, ok := docs.Get(key)
		if !ok {
			response.Error(c, apperror.ErrNotFound("Document"))
			return
		}
		c.Header("Cache-Control", "private, max-age=300")
		c.Data(200, doc.ContentType, doc.Body)
	}
}
