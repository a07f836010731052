package competency

import "context"

type CompetencyRepository interface {
	Create(ctx context.Context, competency Competency) (Competency, error)
	GetByCode(ctx context.Context, code string) (Competency, error)
	List(ctx context.Context) ([]Competency, error)
	ListByCodes(ctx context.Context, codes []string) ([]Competency, error)
	Update(ctx context.Context, req UpdateCompetencyRequest) error
	Delete(ctx context.Context, code string) error
}
