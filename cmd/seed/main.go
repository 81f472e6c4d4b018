// Seed fills the JSON data directory with a starter catalog so the storefront
// has something to render on a fresh checkout of the repo.
package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mia-boutique/storefront/internal/catalog"
	"github.com/mia-boutique/storefront/internal/config"
	"github.com/mia-boutique/storefront/internal/storage"
)

func main() {
	_ = godotenv.Load()

	log, _ := zap.NewDevelopment()
	defer log.Sync()

	cfg := config.Load()
	ctx := context.Background()

	backend := storage.NewJSONFiles(cfg.DataDir)
	cat := &catalog.Repo{Backend: backend}

	stores := []catalog.Store{
		{Name: "MIA Тверская", City: "Москва", Address: "ул. Тверская, 15", Hours: "10:00–22:00", Phone: "+7 (495) 123-45-67"},
		{Name: "MIA Невский", City: "Санкт-Петербург", Address: "Невский пр., 88", Hours: "10:00–21:00", Phone: "+7 (812) 765-43-21"},
	}
	storeIDs := make([]string, 0, len(stores))
	for _, s := range stores {
		created, err := cat.CreateStore(ctx, s)
		if err != nil {
			log.Fatal("seed store", zap.Error(err))
		}
		storeIDs = append(storeIDs, created.ID)
	}

	for _, c := range []catalog.Category{
		{Label: "Пальто", Slug: "coats"},
		{Label: "Платья", Slug: "dresses"},
		{Label: "Трикотаж", Slug: "knitwear"},
	} {
		if _, err := cat.CreateCategory(ctx, c); err != nil {
			log.Fatal("seed category", zap.Error(err))
		}
	}

	oldPrice := 189900
	products := []catalog.NewProduct{
		{
			SKU: "MM-TB-001", Name: "Пальто Teddy Bear", Brand: "Max Mara",
			Description: "Культовое пальто из смесовой шерсти с верблюжьим ворсом.",
			Composition: "Шерсть 70%, альпака 25%, шёлк 5%", Care: "Только сухая чистка",
			Category: "coats", Gender: "women", Price: 159900, OldPrice: &oldPrice,
			Colors: []catalog.Color{{
				ID: uuid.NewString(), Name: "Кэмел", Hex: "#c19a6b",
				Images: []string{"/images/mm-tb-001-camel-1.jpg"},
				Sizes:  []catalog.SizeStock{{Size: "S", Stock: 2}, {Size: "M", Stock: 3}},
			}},
			Stores: storeIDs, IsNew: true, IsActive: true,
		},
		{
			SKU: "TW-DR-014", Name: "Платье миди с поясом", Brand: "Twinset",
			Composition: "Вискоза 100%", Care: "Деликатная стирка 30°",
			Category: "dresses", Gender: "women", Price: 42900,
			Colors: []catalog.Color{{
				ID: uuid.NewString(), Name: "Чёрный", Hex: "#000000",
				Images: []string{"/images/tw-dr-014-black-1.jpg"},
				Sizes:  []catalog.SizeStock{{Size: "XS", Stock: 1}, {Size: "S", Stock: 2}, {Size: "M", Stock: 1}},
			}},
			Stores: storeIDs[:1], IsNew: true, IsActive: true,
		},
	}
	for _, p := range products {
		created, err := cat.CreateProduct(ctx, p)
		if err != nil {
			log.Fatal("seed product", zap.Error(err))
		}
		log.Info("seeded product", zap.String("slug", created.Slug))
	}

	log.Info("seed complete", zap.String("dir", cfg.DataDir))
}
