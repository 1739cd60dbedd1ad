package state

import "finboard/internal/model"

// SeedCategory describes a category to create on first run.
type SeedCategory struct {
	Name string
	Type model.TransactionType
}

// DefaultSeedCategories matches the catalog the dashboard has shipped with
// since its first release.
func DefaultSeedCategories() []SeedCategory {
	return []SeedCategory{
		{Name: "Vendas", Type: model.TypeEntrada},
		{Name: "Serviços", Type: model.TypeEntrada},
		{Name: "Anúncios Google", Type: model.TypeSaida},
		{Name: "Anúncios Facebook", Type: model.TypeSaida},
		{Name: "Ferramentas", Type: model.TypeSaida},
		{Name: "Salários", Type: model.TypeSaida},
		{Name: "Investimento Inicial", Type: model.TypeAporte},
	}
}

// DefaultSeedPaymentMethods returns the stock payment methods.
func DefaultSeedPaymentMethods() []string {
	return []string{
		"PIX",
		"Cartão de Crédito",
		"Cartão de Débito",
		"Transferência Bancária",
		"Dinheiro",
	}
}

// Seed populates empty catalog collections. Non-empty collections are left
// untouched, so re-running at startup is safe. Returns true when anything
// was added.
func (s *State) Seed(categories []SeedCategory, paymentMethods []string) bool {
	seeded := false

	if len(s.Categories()) == 0 {
		for _, c := range categories {
			if !c.Type.Valid() {
				continue
			}
			s.AddCategory(model.Category{ID: s.NextID(), Name: c.Name, Type: c.Type})
			seeded = true
		}
	}

	if len(s.PaymentMethods()) == 0 {
		for _, name := range paymentMethods {
			s.AddPaymentMethod(model.PaymentMethod{ID: s.NextID(), Name: name})
			seeded = true
		}
	}

	return seeded
}
