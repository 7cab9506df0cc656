package upload

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrUnsupportedType is returned for any file that is not a png/jpg/jpeg.
var ErrUnsupportedType = errors.New("unsupported image type")

var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
}

// Saver stores uploaded product images under dir and builds their public
// URLs under publicPath, the prefix the static file route serves.
type Saver struct {
	Dir        string
	PublicPath string
}

func NewSaver(dir, publicPath string) *Saver {
	return &Saver{Dir: dir, PublicPath: publicPath}
}

// Filename builds the stored name: the original basename with spaces
// replaced by dashes, suffixed with a millisecond timestamp.
func Filename(original string) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrUnsupportedType
	}
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base = strings.ReplaceAll(base, " ", "-")
	return base + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10) + ext, nil
}

// Save validates the file type, writes the file under the upload directory
// and returns the stored filename.
func (s *Saver) Save(c *gin.Context, file *multipart.FileHeader) (string, error) {
	name, err := Filename(file.Filename)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, filepath.Join(s.Dir, name)); err != nil {
		return "", err
	}
	return name, nil
}

// PublicURL builds the absolute URL a stored filename is served under,
// using the request's scheme and host.
func (s *Saver) PublicURL(c *gin.Context, filename string) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return fmt.Sprintf("%s://%s%s/%s", scheme, c.Request.Host, s.PublicPath, filename)
}
