package root

import (
	"habitkeep/internal/engine"
	"habitkeep/internal/storage"
)

func openStore() (*storage.Store, error) {
	path, err := storage.ResolvePath()
	if err != nil {
		return nil, err
	}
	return storage.NewStore(path, logger), nil
}

func openService() (*engine.Service, error) {
	st, err := openStore()
	if err != nil {
		return nil, err
	}
	return engine.NewService(st, logger)
}
