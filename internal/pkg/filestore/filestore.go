// Package filestore - локальное хранилище загруженных фото, PDF-отчётов и выгрузок.
// Все файлы лежат плоско в одной директории и адресуются по имени.
package filestore

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var ErrInvalidName = errors.New("invalid file name")

type Store struct {
	fs     afero.Fs
	dir    string
	logger *zap.Logger
}

// New создаёт директорию хранилища, если её нет
func New(fsys afero.Fs, dir string, logger *zap.Logger) (*Store, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &Store{fs: fsys, dir: dir, logger: logger}, nil
}

// NewOS - хранилище на реальной файловой системе
func NewOS(dir string, logger *zap.Logger) (*Store, error) {
	return New(afero.NewOsFs(), dir, logger)
}

func (s *Store) Dir() string {
	return s.dir
}

// Save записывает файл и возвращает путь вида "<dir>/<name>", который хранится в документах
func (s *Store) Save(name string, data []byte) (string, error) {
	full, err := s.resolve(name)
	if err != nil {
		return "", err
	}

	if err := afero.WriteFile(s.fs, full, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}

	s.logger.Debug("File saved", zap.String("path", full), zap.Int("size", len(data)))
	return filepath.ToSlash(full), nil
}

func (s *Store) Read(name string) ([]byte, error) {
	full, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	return afero.ReadFile(s.fs, full)
}

func (s *Store) Exists(name string) (bool, error) {
	full, err := s.resolve(name)
	if err != nil {
		return false, err
	}
	return afero.Exists(s.fs, full)
}

// Remove удаляет файл по сохранённому пути или имени. Отсутствующий файл - не ошибка.
// Берётся только базовое имя: удалить что-то вне директории хранилища нельзя.
func (s *Store) Remove(path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := s.fs.Remove(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove %s: %w", path, err)
	}

	s.logger.Debug("File removed", zap.String("path", full))
	return nil
}

func (s *Store) resolve(name string) (string, error) {
	base := filepath.Base(filepath.FromSlash(name))
	if base == "." || base == ".." || base == string(filepath.Separator) || base == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, base), nil
}
