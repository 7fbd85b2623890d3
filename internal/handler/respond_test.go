package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"Saut_Review/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondErrStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		want int
	}{
		{apperr.ErrNotFound, http.StatusNotFound},
		{apperr.ErrForbidden, http.StatusForbidden},
		{apperr.ErrValidation, http.StatusBadRequest},
		{apperr.Validationf("start_time must be before end_time"), http.StatusBadRequest},
		{apperr.ErrAlreadyMember, http.StatusBadRequest},
		{apperr.ErrNotMember, http.StatusBadRequest},
		{errors.New("db gone"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		respondErr(c, tc.err)
		assert.Equal(t, tc.want, w.Code, "err=%v", tc.err)
	}
}

func TestPageQueryDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=-3&size=oops", nil)

	page, size := pageQuery(c)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, size)
}
