package citysearch

import (
	"context"
	"iter"
	"strings"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

// offlineLimit caps the number of built-in matches returned.
const offlineLimit = 10

// Offline searches a fixed list of popular destinations.
type Offline struct{}

var _ Provider = Offline{}

// Search yields up to 10 cities whose name, country or region code contains
// query, ignoring case.
func (o Offline) Search(_ context.Context, query string) iter.Seq[Suggestion] {
	return seqOf(o.Cities(query), true)
}

// Cities returns the matching built-in cities in list order.
func (Offline) Cities(query string) []domain.City {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []domain.City{}
	for _, c := range offlineCities {
		if len(out) == offlineLimit {
			break
		}
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Country), q) ||
			(c.RegionCode != "" && strings.Contains(strings.ToLower(c.RegionCode), q)) {
			out = append(out, c)
		}
	}
	return out
}

func city(name, country, code, region, regionCode string, population int) domain.City {
	return domain.City{
		Name:        name,
		Country:     country,
		CountryCode: code,
		Region:      region,
		RegionCode:  regionCode,
		Population:  population,
	}
}

// offlineCities: the most searched cities worldwide, then Brazilian
// destinations.
var offlineCities = []domain.City{
	city("New York", "United States", "US", "New York", "NY", 8175133),
	city("Los Angeles", "United States", "US", "California", "CA", 3971883),
	city("London", "United Kingdom", "GB", "England", "ENG", 8982000),
	city("Paris", "France", "FR", "Île-de-France", "IDF", 2161000),
	city("Tokyo", "Japan", "JP", "Tokyo", "13", 13929286),
	city("Sydney", "Australia", "AU", "New South Wales", "NSW", 5312163),
	city("Toronto", "Canada", "CA", "Ontario", "ON", 2731571),
	city("Berlin", "Germany", "DE", "Berlin", "BE", 3669491),
	city("Rome", "Italy", "IT", "Lazio", "62", 2873000),
	city("Madrid", "Spain", "ES", "Madrid", "MD", 3223000),
	city("Barcelona", "Spain", "ES", "Catalonia", "CT", 1620343),
	city("Amsterdam", "Netherlands", "NL", "North Holland", "NH", 821752),
	city("Vienna", "Austria", "AT", "Vienna", "9", 1911000),
	city("Prague", "Czech Republic", "CZ", "Prague", "10", 1280000),
	city("Budapest", "Hungary", "HU", "Budapest", "BU", 1752000),
	city("Dubai", "United Arab Emirates", "AE", "Dubai", "DU", 3331420),
	city("Singapore", "Singapore", "SG", "", "", 5685807),
	city("Hong Kong", "Hong Kong", "HK", "", "", 7496981),
	city("Seoul", "South Korea", "KR", "Seoul", "11", 9720846),
	city("Bangkok", "Thailand", "TH", "Bangkok", "10", 8305218),

	city("São Paulo", "Brazil", "BR", "São Paulo", "SP", 12325232),
	city("Rio de Janeiro", "Brazil", "BR", "Rio de Janeiro", "RJ", 6748000),
	city("Brasília", "Brazil", "BR", "Federal District", "DF", 3055149),
	city("Salvador", "Brazil", "BR", "Bahia", "BA", 2886698),
	city("Fortaleza", "Brazil", "BR", "Ceará", "CE", 2669342),
	city("Belo Horizonte", "Brazil", "BR", "Minas Gerais", "MG", 2521564),
	city("Manaus", "Brazil", "BR", "Amazonas", "AM", 2219580),
	city("Curitiba", "Brazil", "BR", "Paraná", "PR", 1948626),
	city("Recife", "Brazil", "BR", "Pernambuco", "PE", 1653461),
	city("Goiânia", "Brazil", "BR", "Goiás", "GO", 1536097),
	city("Belém", "Brazil", "BR", "Pará", "PA", 1499641),
	city("Porto Alegre", "Brazil", "BR", "Rio Grande do Sul", "RS", 1488252),
	city("Florianópolis", "Brazil", "BR", "Santa Catarina", "SC", 508826),
	city("Gramado", "Brazil", "BR", "Rio Grande do Sul", "RS", 36000),
	city("Campos do Jordão", "Brazil", "BR", "São Paulo", "SP", 52000),
	city("Búzios", "Brazil", "BR", "Rio de Janeiro", "RJ", 33000),
	city("Paraty", "Brazil", "BR", "Rio de Janeiro", "RJ", 43000),
	city("Ouro Preto", "Brazil", "BR", "Minas Gerais", "MG", 74000),
	city("Bonito", "Brazil", "BR", "Mato Grosso do Sul", "MS", 22000),
	city("Fernando de Noronha", "Brazil", "BR", "Pernambuco", "PE", 3000),
	city("Jericoacoara", "Brazil", "BR", "Ceará", "CE", 2000),
	city("Foz do Iguaçu", "Brazil", "BR", "Paraná", "PR", 258823),
	city("Balneário Camboriú", "Brazil", "BR", "Santa Catarina", "SC", 138732),
	city("Blumenau", "Brazil", "BR", "Santa Catarina", "SC", 361855),
	city("Canela", "Brazil", "BR", "Rio Grande do Sul", "RS", 42000),
	city("Monte Verde", "Brazil", "BR", "Minas Gerais", "MG", 8000),
	city("Angra dos Reis", "Brazil", "BR", "Rio de Janeiro", "RJ", 200000),
	city("Petrópolis", "Brazil", "BR", "Rio de Janeiro", "RJ", 306678),
	city("Tiradentes", "Brazil", "BR", "Minas Gerais", "MG", 7000),
	city("Caldas Novas", "Brazil", "BR", "Goiás", "GO", 81000),
}
