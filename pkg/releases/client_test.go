package releases

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const channelDocument = `{
  "channel-version": "8.0",
  "latest-release": "8.0.4",
  "latest-release-date": "2024-04-09",
  "latest-runtime": "8.0.4",
  "latest-sdk": "8.0.204",
  "release-type": "lts",
  "support-phase": "active",
  "releases": [
    {
      "release-date": "2024-04-09",
      "release-version": "8.0.4",
      "security": true,
      "cve-list": [
        {
          "cve-id": "CVE-2024-21409",
          "cve-url": "https://www.cve.org/CVERecord?id=CVE-2024-21409"
        }
      ],
      "release-notes": "https://github.com/dotnet/core/blob/main/release-notes/8.0/8.0.4/8.0.4.md",
      "runtime": {
        "version": "8.0.4",
        "version-display": "8.0.4"
      },
      "sdk": {
        "version": "8.0.204",
        "version-display": "8.0.204",
        "runtime-version": "8.0.4"
      },
      "sdks": [
        {
          "version": "8.0.204",
          "runtime-version": "8.0.4"
        },
        {
          "version": "8.0.107",
          "runtime-version": "8.0.4"
        }
      ]
    }
  ]
}`

func TestClientGetChannel(t *testing.T) {
	t.Run("parses the channel document", func(t *testing.T) {
		var gotPath, gotUserAgent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotUserAgent = r.Header.Get("User-Agent")
			w.Write([]byte(channelDocument))
		}))
		defer server.Close()

		client := NewClient(WithEndpoint(server.URL))
		channel, err := client.GetChannel(context.Background(), "8.0")
		require.NoError(t, err)

		assert.Equal(t, "/8.0/releases.json", gotPath)
		assert.Contains(t, gotUserAgent, "UpdateDotnetSdk/")
		assert.Equal(t, "8.0", channel.ChannelVersion)
		assert.Equal(t, "8.0.204", channel.LatestSDK)
		require.Len(t, channel.Releases, 1)
		assert.Equal(t, "8.0.4", channel.Releases[0].RuntimeVersion())
		assert.True(t, channel.Releases[0].Security)
		require.Len(t, channel.Releases[0].CveList, 1)
		assert.Equal(t, "CVE-2024-21409", channel.Releases[0].CveList[0].ID)
		require.Len(t, channel.Releases[0].Sdks, 2)
	})

	t.Run("does not retry a 404", func(t *testing.T) {
		var requests int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			http.Error(w, "channel not found", http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(WithEndpoint(server.URL), WithMaxRetries(3), WithRetryInterval(time.Millisecond))
		_, err := client.GetChannel(context.Background(), "3.5")
		require.Error(t, err)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "channel not found", apiErr.Body)
		assert.Equal(t, 1, requests)
	})

	t.Run("retries a 500 until it succeeds", func(t *testing.T) {
		var requests int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			if requests < 3 {
				http.Error(w, "upstream error", http.StatusInternalServerError)
				return
			}
			w.Write([]byte(channelDocument))
		}))
		defer server.Close()

		client := NewClient(WithEndpoint(server.URL), WithMaxRetries(3), WithRetryInterval(time.Millisecond))
		channel, err := client.GetChannel(context.Background(), "8.0")
		require.NoError(t, err)

		assert.Equal(t, 3, requests)
		assert.Equal(t, "8.0", channel.ChannelVersion)
	})

	t.Run("gives up after the retry budget", func(t *testing.T) {
		var requests int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			http.Error(w, "upstream error", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(WithEndpoint(server.URL), WithMaxRetries(2), WithRetryInterval(time.Millisecond))
		_, err := client.GetChannel(context.Background(), "8.0")
		require.Error(t, err)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, 3, requests)
	})

	t.Run("rejects a malformed document", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"channel-version": "8.0", "releases": `))
		}))
		defer server.Close()

		client := NewClient(WithEndpoint(server.URL))
		_, err := client.GetChannel(context.Background(), "8.0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unmarshal")
	})

	t.Run("rejects an incomplete document", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"channel-version": "8.0"}`))
		}))
		defer server.Close()

		client := NewClient(WithEndpoint(server.URL))
		_, err := client.GetChannel(context.Background(), "8.0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "incomplete")
	})
}

func TestClientGetQualityVersion(t *testing.T) {
	t.Run("trims the published version file", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte("\ufeff9.0.200-preview.0.24605.6\r\n"))
		}))
		defer server.Close()

		client := NewClient(WithQualityEndpoint(server.URL))
		version, err := client.GetQualityVersion(context.Background(), "9.0", "Daily")
		require.NoError(t, err)

		assert.Equal(t, "/9.0/daily/sdk-productVersion.txt", gotPath)
		assert.Equal(t, "9.0.200-preview.0.24605.6", version)
	})

	t.Run("rejects an empty version file", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("\r\n"))
		}))
		defer server.Close()

		client := NewClient(WithQualityEndpoint(server.URL))
		_, err := client.GetQualityVersion(context.Background(), "9.0", "daily")
		require.Error(t, err)
	})

	t.Run("surfaces a missing quality", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(WithQualityEndpoint(server.URL), WithRetryInterval(time.Millisecond))
		_, err := client.GetQualityVersion(context.Background(), "9.0", "nightly")
		require.Error(t, err)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})
}
