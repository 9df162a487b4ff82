package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
)

func TestOriginLister_List(t *testing.T) {
	client := &fakeClient{responder: listThen(http.StatusOK,
		`{"data":[{"id":"o1","domain":"https://a.example"},{"domain":"https://b.example"}]}`, 0)}
	lister := NewOriginLister(client, &fakeResolver{})

	result := lister.List(context.Background())

	require.True(t, result.OK)
	assert.Equal(t, []domain.RemoteOrigin{
		{ID: "o1", Domain: "https://a.example"},
		{ID: "", Domain: "https://b.example"},
	}, result.Origins)
	assert.Equal(t, domain.CategorySuccess200, result.Outcome.Category)
	assert.Equal(t, domain.OperationList, result.Outcome.Operation)
}

func TestOriginLister_List_NonOK(t *testing.T) {
	client := &fakeClient{responder: listThen(http.StatusInternalServerError, ``, 0)}
	lister := NewOriginLister(client, &fakeResolver{})

	result := lister.List(context.Background())

	assert.False(t, result.OK)
	assert.Empty(t, result.Origins)
	assert.Equal(t, domain.CategoryServerError500, result.Outcome.Category)
	assert.Equal(t, http.StatusInternalServerError, result.Outcome.StatusCode)
}

func TestOriginLister_List_EmptyBodyIsParseFailure(t *testing.T) {
	client := &fakeClient{responder: listThen(http.StatusOK, ``, 0)}
	lister := NewOriginLister(client, &fakeResolver{})

	result := lister.List(context.Background())

	assert.False(t, result.OK)
	assert.Equal(t, domain.CategoryParseFailure, result.Outcome.Category)
	assert.False(t, result.Outcome.Category.HasStatus())
}

func TestDecodeOrigins(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    []domain.RemoteOrigin
		wantErr bool
	}{
		{name: "two records", body: `{"data":[{"id":"a","domain":"x"},{"id":"b","domain":"y"}]}`,
			want: []domain.RemoteOrigin{{ID: "a", Domain: "x"}, {ID: "b", Domain: "y"}}},
		{name: "extra fields ignored", body: `{"data":[{"id":"a","domain":"x","_links":{}}],"itemsTotal":1}`,
			want: []domain.RemoteOrigin{{ID: "a", Domain: "x"}}},
		{name: "record without domain skipped", body: `{"data":[{"id":"a"},{"id":"b","domain":"y"}]}`,
			want: []domain.RemoteOrigin{{ID: "b", Domain: "y"}}},
		{name: "empty data", body: `{"data":[]}`, want: []domain.RemoteOrigin{}},
		{name: "missing data", body: `{}`, want: []domain.RemoteOrigin{}},
		{name: "not json", body: `<html>`, wantErr: true},
		{name: "data wrong type", body: `{"data":"nope"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeOrigins([]byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrMalformedResponse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
