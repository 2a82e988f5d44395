package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/ysbai/gazdistrib-api/internal/domain/entity"
	"github.com/ysbai/gazdistrib-api/internal/domain/repository"
)

var _ repository.CylinderRepository = (*CylinderRepo)(nil)

// CylinderRepo implémentation de CylinderRepository (utilisable avec pool ou tx).
// Une ligne par type de bouteille, le type est la clé naturelle.
type CylinderRepo struct {
	q Querier
}

// NewCylinderRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewCylinderRepository(q Querier) *CylinderRepo {
	return &CylinderRepo{q: q}
}

// Upsert insère ou remplace le stock d'un type de bouteille.
func (r *CylinderRepo) Upsert(stock *entity.CylinderStock) error {
	query := `
		INSERT INTO cylinder_stock (id, type, total_quantity, distributed_quantity, remaining_quantity, unit_price, tax_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (type) DO UPDATE
		SET total_quantity       = EXCLUDED.total_quantity,
		    distributed_quantity = EXCLUDED.distributed_quantity,
		    remaining_quantity   = EXCLUDED.remaining_quantity,
		    unit_price           = EXCLUDED.unit_price,
		    tax_rate             = EXCLUDED.tax_rate`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.Type, stock.TotalQuantity, stock.DistributedQuantity,
		stock.RemainingQuantity, stock.UnitPrice, stock.TaxRate,
	)
	if err != nil {
		return fmt.Errorf("upsert cylinder stock: %w", err)
	}
	return nil
}

// GetByType retourne le stock d'un type de bouteille (nil si absent).
func (r *CylinderRepo) GetByType(cylinderType string) (*entity.CylinderStock, error) {
	query := `
		SELECT id, type, total_quantity, distributed_quantity, remaining_quantity, unit_price, tax_rate
		FROM cylinder_stock WHERE type = $1`
	var s entity.CylinderStock
	err := r.q.QueryRow(context.Background(), query, cylinderType).Scan(
		&s.ID, &s.Type, &s.TotalQuantity, &s.DistributedQuantity, &s.RemainingQuantity,
		&s.UnitPrice, &s.TaxRate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cylinder stock: %w", err)
	}
	return &s, nil
}

// List retourne tout le stock, dans l'ordre du référentiel des types. Cet
// ordre est observable : le moteur d'allocation remplit les articles dans
// l'ordre où l'inventaire lui est fourni.
func (r *CylinderRepo) List() ([]entity.CylinderStock, error) {
	query := `
		SELECT id, type, total_quantity, distributed_quantity, remaining_quantity, unit_price, tax_rate
		FROM cylinder_stock`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list cylinder stock: %w", err)
	}
	defer rows.Close()
	var list []entity.CylinderStock
	for rows.Next() {
		var s entity.CylinderStock
		if err := rows.Scan(&s.ID, &s.Type, &s.TotalQuantity, &s.DistributedQuantity,
			&s.RemainingQuantity, &s.UnitPrice, &s.TaxRate); err != nil {
			return nil, fmt.Errorf("scan cylinder stock: %w", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sortByReferential(list)
	return list, nil
}

// sortByReferential trie le stock selon l'ordre du référentiel des types,
// les types inconnus en fin de liste.
func sortByReferential(list []entity.CylinderStock) {
	rank := make(map[string]int, len(entity.CylinderTypes))
	for i, t := range entity.CylinderTypes {
		rank[t] = i
	}
	sort.SliceStable(list, func(i, j int) bool {
		ri, iok := rank[list[i].Type]
		rj, jok := rank[list[j].Type]
		if iok != jok {
			return iok
		}
		return ri < rj
	})
}
