package httpsource

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"animalbase/internal/domain/animals"
	"animalbase/internal/platform/httpclient"

	"github.com/stretchr/testify/require"
)

func TestLoad_DecodesArray(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/animals.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"fullname":"Mandu the amazing cat","age":10},{"fullname":"Rex the Good Dog","age":3}]`))
	}))
	defer ts.Close()

	raws, err := New(ts.URL+"/animals.json", time.Second).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, []animals.RawAnimal{
		{Fullname: "Mandu the amazing cat", Age: 10},
		{Fullname: "Rex the Good Dog", Age: 3},
	}, raws)
}

func TestLoad_Non2xxIsLoadFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := New(ts.URL+"/animals.json", time.Second).Load(context.Background())
	require.ErrorIs(t, err, animals.ErrLoadFailed)

	var httpErr *httpclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, http.StatusNotFound, httpErr.StatusCode)
}

func TestLoad_ObjectPayloadIsInvalid(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"fullname":"Rex the Good Dog"}`))
	}))
	defer ts.Close()

	_, err := New(ts.URL, time.Second).Load(context.Background())
	require.ErrorIs(t, err, animals.ErrInvalidPayload)
}

func TestLoad_RelativePathUsesBaseURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/data/animals.json", r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c := httpclient.New(time.Second)
	c.BaseURL = ts.URL + "/data"

	raws, err := NewWithClient(c, "animals.json").Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, raws)
}
