package main

import (
	"marketplace/internal/infra/persistence/model"

	"gorm.io/gen"
)

// main generates typed query helpers for every persisted model.
func main() {
	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(model.All()...)

	gen.Execute()
}
