package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Helpers for the multipart endpoints. A field left out of the form
// yields nil, so partial updates can tell "absent" from "empty".

func optionalString(c *gin.Context, field string) *string {
	if value, ok := c.GetPostForm(field); ok {
		return &value
	}
	return nil
}

func optionalInt(c *gin.Context, field string) (*int, error) {
	value, ok := c.GetPostForm(field)
	if !ok || value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", field)
	}
	return &n, nil
}

func optionalFloat(c *gin.Context, field string) (*float64, error) {
	value, ok := c.GetPostForm(field)
	if !ok || value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", field)
	}
	return &f, nil
}

func optionalBool(c *gin.Context, field string) (*bool, error) {
	value, ok := c.GetPostForm(field)
	if !ok || value == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", field)
	}
	return &b, nil
}

func optionalDate(c *gin.Context, field string) (*time.Time, error) {
	value, ok := c.GetPostForm(field)
	if !ok || value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s, expected YYYY-MM-DD", field)
	}
	return &t, nil
}

func formFileBytes(c *gin.Context, field string) (string, []byte, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil, nil
		}
		return "", nil, err
	}

	f, err := file.Open()
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, err
	}

	return file.Filename, data, nil
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
