package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicHeaderRoundTrip(t *testing.T) {
	header := BasicHeader("admin", "s3cr:et")
	assert.Equal(t, "Basic YWRtaW46czNjcjpldA==", header)

	user, pass, err := ParseBasic(header)
	require.NoError(t, err)
	assert.Equal(t, "admin", user)
	assert.Equal(t, "s3cr:et", pass)
}

func TestParseBasic(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{name: "empty", header: "", wantErr: ErrMalformedHeader},
		{name: "bearer scheme", header: "Bearer abc", wantErr: ErrMalformedHeader},
		{name: "prefix only", header: "Basic ", wantErr: ErrMalformedHeader},
		{name: "not base64", header: "Basic !!!", wantErr: ErrMalformedHeader},
		{name: "no colon", header: "Basic YWRtaW4=", wantErr: ErrMalformedHeader},
		{name: "empty password", header: BasicHeader("admin", "")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseBasic(tc.header)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUsernameContext(t *testing.T) {
	_, ok := UsernameFromContext(context.Background())
	assert.False(t, ok)

	ctx := ContextWithUsername(context.Background(), "admin")
	name, ok := UsernameFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "admin", name)
}
