package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const latestPath = "/repos/shlvgit07/basmach/releases/latest"

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
		wantErr      bool
	}{
		{"darwin", "amd64", "basmach_Darwin_all.tar.gz", false},
		{"darwin", "arm64", "basmach_Darwin_all.tar.gz", false},
		{"linux", "amd64", "basmach_Linux_x86_64.tar.gz", false},
		{"linux", "arm64", "basmach_Linux_arm64.tar.gz", false},
		{"linux", "386", "basmach_Linux_i386.tar.gz", false},
		{"windows", "amd64", "basmach_Windows_x86_64.zip", false},
		{"freebsd", "amd64", "", true},
		{"linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	got := parseChecksums([]byte("abc123  a.tar.gz\nbadline\n  \nfoo  bar  baz\ndef456  b.zip\n"))
	assert.Equal(t, map[string]string{"a.tar.gz": "abc123", "b.zip": "def456"}, got)
	assert.Empty(t, parseChecksums(nil))
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("hello world")
	h := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(h[:])))
	assert.ErrorIs(t, verifyChecksum(data, "00"), ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	content := []byte("#!/bin/sh\necho basmach")

	got, err := extractBinary(buildTarGz(t, "basmach", content), "basmach_Linux_x86_64.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, content, got)

	got, err = extractBinary(buildZip(t, "basmach.exe", content), "basmach_Windows_x86_64.zip")
	require.NoError(t, err)
	assert.Equal(t, content, got)

	_, err = extractBinary(buildTarGz(t, "other", content), "basmach_Linux_x86_64.tar.gz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyUpdate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "basmach")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	data := []byte("new-binary-content")
	h := sha256.Sum256(data)
	require.NoError(t, applyUpdate(data, target, h[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	assert.ErrorIs(t, applyUpdate(data, target, []byte("wrong")), ErrChecksum)
}

func TestNewer(t *testing.T) {
	tests := []struct {
		latest, current string
		want            bool
	}{
		{"v1.2.0", "v1.1.9", true},
		{"v1.2.0", "1.1.0", true},
		{"v1.2.0", "v1.2.0", false},
		{"v1.1.0", "v1.2.0", false},
		{"v1.2.0", "(devel)", false},
		{"garbage", "v1.0.0", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, newer(tt.latest, tt.current), "%s vs %s", tt.latest, tt.current)
	}
}

func TestCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != latestPath {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
	}))
	defer server.Close()

	c := NewChecker(WithBaseURL(server.URL))
	res, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.NoError(t, err)
	assert.True(t, res.UpdateAvailable)
	assert.Equal(t, "v2.0.0", res.LatestVersion)
	assert.Equal(t, "https://example.com/v2.0.0", res.ReleaseURL)

	assert.Equal(t, "v2.0.0", c.LatestVersion(context.Background(), "v1.0.0"))
	assert.Empty(t, c.LatestVersion(context.Background(), "v2.0.0"))
	assert.Empty(t, c.LatestVersion(context.Background(), "(devel)"))

	_, err = NewChecker(WithBaseURL(server.URL), WithRepository("someone", "else")).
		Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	assert.Error(t, err)
}

// releaseServer serves a v2.0.0 release with the given archive and checksum
// file. A nil archive answers 404 for downloads.
func releaseServer(t *testing.T, asset string, archive []byte, checksums string) *httptest.Server {
	t.Helper()
	base := "/shlvgit07/basmach/releases/download/v2.0.0/"
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == latestPath:
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
		case r.URL.Path == base+asset && archive != nil:
			_, _ = w.Write(archive)
		case r.URL.Path == base+"checksums.txt" && archive != nil:
			_, _ = w.Write([]byte(checksums))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestUpdate(t *testing.T) {
	asset, err := assetNameFor(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		t.Skip("no release asset for this platform")
	}
	content := []byte("new-basmach-binary")
	archive := buildTarGz(t, "basmach", content)
	if filepath.Ext(asset) == ".zip" {
		archive = buildZip(t, "basmach.exe", content)
	}
	h := sha256.Sum256(archive)
	goodSums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(h[:]), asset)

	t.Run("happy path", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "basmach")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := releaseServer(t, asset, archive, goodSums)
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, content, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		server := releaseServer(t, asset, archive, "00  "+asset+"\n")
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		server := releaseServer(t, asset, nil, "")
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

func TestUpdateShortCircuits(t *testing.T) {
	err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrDevBuild)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"v1.0.0"}`))
	}))
	defer server.Close()

	err = NewChecker(WithBaseURL(server.URL)).
		Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrAlreadyLatest)
}

func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Size: int64(len(content)), Mode: 0755}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func buildZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	require.NoError(t, err)
	_, err = w.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
