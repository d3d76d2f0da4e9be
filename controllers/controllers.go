package controllers

import (
	"sync"

	"trimz-backend/config"
	"trimz-backend/data"
	"trimz-backend/directory"
)

// The directory snapshot is immutable once built; profile writes swap in
// a fresh snapshot rather than mutating the current one.
var (
	catalogMu sync.RWMutex
	catalog   *directory.Catalog
)

// SetCatalog installs a new directory snapshot. Called from main at
// startup and after catalog-affecting writes.
func SetCatalog(c *directory.Catalog) {
	catalogMu.Lock()
	catalog = c
	catalogMu.Unlock()
}

func getCatalog() *directory.Catalog {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	return catalog
}

// RefreshCatalog rebuilds the snapshot from the database so newly
// registered or updated hairdressers become visible to directory queries.
func RefreshCatalog() error {
	c, err := data.LoadCatalog(config.DB)
	if err != nil {
		return err
	}
	SetCatalog(c)
	return nil
}
