package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage は商品画像をローカルディスクに保存する。
// ファイル名は「現在時刻(ミリ秒)-元のファイル名」。重複の可能性は低いが0ではない。
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir string, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save はアップロードされたファイルを保存して保存名を返す。
func (s *LocalStorage) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(fh.Filename))

	dstPath := filepath.Join(s.dir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		//書き込み途中のゴミは消す
		_ = os.Remove(dstPath)
		return "", err
	}

	return name, nil
}

// PublicURL は保存名から公開URLを組み立てる。
func (s *LocalStorage) PublicURL(name string) string {
	return s.baseURL + "/uploads/" + name
}

// Dir は静的配信のマウント用。
func (s *LocalStorage) Dir() string {
	return s.dir
}

// sanitizeFilename はパス区切りなどを落として保存先の外に書けないようにする。
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "_")

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}

	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "upload"
	}
	return out
}
