package main

import (
	"curator/internal/infra/persistence/model"

	"gorm.io/gen"
)

const outPath = "./internal/infra/persistence/postgres/query"

func models() []any {
	return []any{
		model.LocationModel{},
		model.ProductModel{},
		model.ProductLocationModel{},
		model.TitleModel{},
	}
}

func main() {
	gen := gen.NewGenerator(gen.Config{
		OutPath: outPath,
	})

	gen.ApplyBasic(models()...)

	gen.Execute()
}
