// Herramienta de semilla: preescribe el estado persistido de los stores
// (favoritos y borrador de suscripción) para demos y entornos de prueba.
//
// Uso:
//
//	go run ./cmd/seed -favorites 1,3,8 -tier standard
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/Blackbiz-api/internal/application/ports"
	"github.com/jhoicas/Blackbiz-api/internal/domain/entity"
	"github.com/jhoicas/Blackbiz-api/internal/infrastructure/memory"
	"github.com/jhoicas/Blackbiz-api/internal/infrastructure/state"
)

func main() {
	dir := flag.String("dir", "./data", "directorio de estado (backend file)")
	favorites := flag.String("favorites", "1,3,8", "ids de negocios favoritos separados por coma")
	tier := flag.String("tier", "", "tier id del borrador de suscripción (vacío = sin borrador)")
	flag.Parse()

	store, err := state.NewFileStore(*dir)
	if err != nil {
		fatal("abrir directorio de estado: %v", err)
	}
	ctx := context.Background()

	catalog := memory.NewBusinessRepository()
	ids := make([]string, 0)
	for _, id := range strings.Split(*favorites, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if catalog.GetByID(id) == nil {
			fatal("el negocio %q no existe en el catálogo", id)
		}
		ids = append(ids, id)
	}

	favBlob, _ := json.Marshal(map[string][]string{"favorite_business_ids": ids})
	if err := store.Save(ctx, ports.KeyBusinessStore, favBlob); err != nil {
		fatal("guardar favoritos: %v", err)
	}
	fmt.Printf("favoritos sembrados: %v\n", ids)

	if *tier != "" {
		if !entity.ValidTier(entity.TierID(*tier)) {
			fatal("tier desconocido %q (válidos: basic, standard, premium)", *tier)
		}
		draftBlob, _ := json.Marshal(map[string]string{
			"selected_tier_id": *tier,
			"business_name":    "",
			"business_email":   "",
			"business_phone":   "",
		})
		if err := store.Save(ctx, ports.KeySubscriptionStore, draftBlob); err != nil {
			fatal("guardar borrador: %v", err)
		}
		fmt.Printf("borrador sembrado con tier %s\n", *tier)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
