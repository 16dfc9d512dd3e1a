// internal/catalog/builtin.go
package catalog

import "github.com/danvv/auctionfc/internal/models"

// Builtin returns the default player pool used when no catalog file is
// configured. Five players per detailed position, mixed rarities, enough
// depth for the standard 36-item queue with headroom for back-fill.
func Builtin() *Static {
	return NewStatic(builtinPool())
}

type poolRow struct {
	name   string
	rating int
	pos    models.Position
	alts   []models.Position
	rarity models.Rarity
	stats  models.Stats
	club   string
	league string
	nation string
	age    int
}

func builtinPool() []*models.DraftItem {
	rows := []poolRow{
		// Goalkeepers
		{"Matteo Ferraro", 90, models.PosGK, nil, models.RarityLegendary, models.Stats{Pace: 52, Shooting: 30, Passing: 68, Dribbling: 50, Defending: 45, Physical: 82}, "FC Aurelio", "Serie Alta", "Italy", 29},
		{"Jonas Brandt", 85, models.PosGK, nil, models.RarityEpic, models.Stats{Pace: 50, Shooting: 25, Passing: 62, Dribbling: 44, Defending: 42, Physical: 80}, "SV Nordwall", "Bundesliga Nord", "Germany", 31},
		{"Iker Salvado", 82, models.PosGK, nil, models.RarityRare, models.Stats{Pace: 48, Shooting: 22, Passing: 60, Dribbling: 42, Defending: 40, Physical: 78}, "CD Miravalle", "La Primera", "Spain", 27},
		{"Tomás Quiroga", 78, models.PosGK, nil, models.RarityCommon, models.Stats{Pace: 45, Shooting: 20, Passing: 55, Dribbling: 40, Defending: 38, Physical: 75}, "Atlético Brisas", "Liga Austral", "Argentina", 24},
		{"Felix Omondi", 74, models.PosGK, nil, models.RarityCommon, models.Stats{Pace: 44, Shooting: 18, Passing: 52, Dribbling: 38, Defending: 36, Physical: 72}, "Harbour City", "Premier Coast", "Kenya", 22},
		// Centre-backs
		{"Viktor Malinov", 89, models.PosCB, []models.Position{models.PosCDM}, models.RarityLegendary, models.Stats{Pace: 72, Shooting: 45, Passing: 70, Dribbling: 62, Defending: 90, Physical: 88}, "FC Aurelio", "Serie Alta", "Bulgaria", 28},
		{"Samuel Okafor", 86, models.PosCB, []models.Position{models.PosRB}, models.RarityEpic, models.Stats{Pace: 78, Shooting: 40, Passing: 66, Dribbling: 60, Defending: 87, Physical: 86}, "Harbour City", "Premier Coast", "Nigeria", 26},
		{"Luca Bernardi", 83, models.PosCB, nil, models.RarityRare, models.Stats{Pace: 68, Shooting: 38, Passing: 64, Dribbling: 58, Defending: 84, Physical: 82}, "CD Miravalle", "La Primera", "Italy", 30},
		{"Anders Vik", 79, models.PosCB, []models.Position{models.PosLB}, models.RarityCommon, models.Stats{Pace: 66, Shooting: 34, Passing: 60, Dribbling: 54, Defending: 80, Physical: 80}, "SV Nordwall", "Bundesliga Nord", "Norway", 25},
		{"Diego Parreira", 75, models.PosCB, nil, models.RarityCommon, models.Stats{Pace: 64, Shooting: 30, Passing: 56, Dribbling: 50, Defending: 76, Physical: 78}, "Atlético Brisas", "Liga Austral", "Brazil", 23},
		// Left-backs
		{"Rafael Sintra", 86, models.PosLB, []models.Position{models.PosLM}, models.RarityEpic, models.Stats{Pace: 88, Shooting: 52, Passing: 76, Dribbling: 78, Defending: 82, Physical: 76}, "CD Miravalle", "La Primera", "Portugal", 27},
		{"Emre Kaya", 82, models.PosLB, []models.Position{models.PosLW}, models.RarityRare, models.Stats{Pace: 86, Shooting: 48, Passing: 72, Dribbling: 74, Defending: 78, Physical: 72}, "Harbour City", "Premier Coast", "Türkiye", 25},
		{"Niklas Berg", 78, models.PosLB, nil, models.RarityCommon, models.Stats{Pace: 82, Shooting: 42, Passing: 68, Dribbling: 70, Defending: 76, Physical: 71}, "SV Nordwall", "Bundesliga Nord", "Sweden", 28},
		{"Owen Caldwell", 74, models.PosLB, []models.Position{models.PosCB}, models.RarityCommon, models.Stats{Pace: 78, Shooting: 38, Passing: 62, Dribbling: 64, Defending: 74, Physical: 72}, "Harbour City", "Premier Coast", "England", 21},
		{"Mario Vidal", 71, models.PosLB, nil, models.RarityCommon, models.Stats{Pace: 76, Shooting: 36, Passing: 60, Dribbling: 62, Defending: 71, Physical: 69}, "Atlético Brisas", "Liga Austral", "Chile", 33},
		// Right-backs
		{"Kenji Watanabe", 85, models.PosRB, []models.Position{models.PosRM}, models.RarityEpic, models.Stats{Pace: 90, Shooting: 50, Passing: 74, Dribbling: 80, Defending: 80, Physical: 74}, "FC Aurelio", "Serie Alta", "Japan", 26},
		{"Pieter Joubert", 81, models.PosRB, nil, models.RarityRare, models.Stats{Pace: 84, Shooting: 46, Passing: 70, Dribbling: 72, Defending: 79, Physical: 75}, "SV Nordwall", "Bundesliga Nord", "South Africa", 29},
		{"Callum Doyle", 77, models.PosRB, []models.Position{models.PosCB}, models.RarityCommon, models.Stats{Pace: 80, Shooting: 40, Passing: 66, Dribbling: 68, Defending: 75, Physical: 73}, "Harbour City", "Premier Coast", "Ireland", 24},
		{"Santi Bermúdez", 73, models.PosRB, nil, models.RarityCommon, models.Stats{Pace: 78, Shooting: 38, Passing: 62, Dribbling: 66, Defending: 72, Physical: 70}, "CD Miravalle", "La Primera", "Spain", 22},
		{"Adama Cissé", 70, models.PosRB, []models.Position{models.PosRM}, models.RarityCommon, models.Stats{Pace: 83, Shooting: 35, Passing: 58, Dribbling: 64, Defending: 68, Physical: 71}, "Atlético Brisas", "Liga Austral", "Mali", 20},
		// Defensive midfielders
		{"Thiago Moraes", 88, models.PosCDM, []models.Position{models.PosCM}, models.RarityLegendary, models.Stats{Pace: 70, Shooting: 62, Passing: 84, Dribbling: 78, Defending: 86, Physical: 85}, "CD Miravalle", "La Primera", "Brazil", 29},
		{"Aleksander Nowak", 84, models.PosCDM, []models.Position{models.PosCB}, models.RarityEpic, models.Stats{Pace: 66, Shooting: 58, Passing: 80, Dribbling: 72, Defending: 84, Physical: 84}, "SV Nordwall", "Bundesliga Nord", "Poland", 27},
		{"Yusuf Traoré", 80, models.PosCDM, nil, models.RarityRare, models.Stats{Pace: 68, Shooting: 52, Passing: 76, Dribbling: 70, Defending: 80, Physical: 82}, "FC Aurelio", "Serie Alta", "Côte d'Ivoire", 25},
		{"Jack Whitmore", 76, models.PosCDM, []models.Position{models.PosCM}, models.RarityCommon, models.Stats{Pace: 62, Shooting: 50, Passing: 72, Dribbling: 66, Defending: 76, Physical: 78}, "Harbour City", "Premier Coast", "England", 23},
		{"Luis Roca", 72, models.PosCDM, nil, models.RarityCommon, models.Stats{Pace: 60, Shooting: 46, Passing: 68, Dribbling: 62, Defending: 73, Physical: 75}, "Atlético Brisas", "Liga Austral", "Uruguay", 32},
		// Central midfielders
		{"Émile Fontaine", 91, models.PosCM, []models.Position{models.PosCAM}, models.RarityLegendary, models.Stats{Pace: 76, Shooting: 78, Passing: 92, Dribbling: 88, Defending: 68, Physical: 74}, "FC Aurelio", "Serie Alta", "France", 28},
		{"Mateo Herrera", 86, models.PosCM, []models.Position{models.PosCDM}, models.RarityEpic, models.Stats{Pace: 72, Shooting: 72, Passing: 86, Dribbling: 82, Defending: 70, Physical: 73}, "CD Miravalle", "La Primera", "Argentina", 26},
		{"Daan Vermeer", 82, models.PosCM, nil, models.RarityRare, models.Stats{Pace: 70, Shooting: 68, Passing: 82, Dribbling: 78, Defending: 64, Physical: 70}, "SV Nordwall", "Bundesliga Nord", "Netherlands", 27},
		{"Harvey Lund", 78, models.PosCM, []models.Position{models.PosCAM}, models.RarityCommon, models.Stats{Pace: 68, Shooting: 64, Passing: 78, Dribbling: 74, Defending: 60, Physical: 68}, "Harbour City", "Premier Coast", "Denmark", 24},
		{"Gonzalo Prieto", 74, models.PosCM, nil, models.RarityCommon, models.Stats{Pace: 66, Shooting: 60, Passing: 74, Dribbling: 70, Defending: 58, Physical: 66}, "Atlético Brisas", "Liga Austral", "Paraguay", 21},
		// Attacking midfielders
		{"Nikola Aradski", 89, models.PosCAM, []models.Position{models.PosCM, models.PosLW}, models.RarityLegendary, models.Stats{Pace: 80, Shooting: 84, Passing: 88, Dribbling: 90, Defending: 42, Physical: 64}, "SV Nordwall", "Bundesliga Nord", "Serbia", 27},
		{"Gabriel Antunes", 85, models.PosCAM, []models.Position{models.PosRW}, models.RarityEpic, models.Stats{Pace: 82, Shooting: 80, Passing: 84, Dribbling: 88, Defending: 40, Physical: 60}, "CD Miravalle", "La Primera", "Brazil", 24},
		{"Leon Krause", 81, models.PosCAM, nil, models.RarityRare, models.Stats{Pace: 76, Shooting: 76, Passing: 80, Dribbling: 84, Defending: 38, Physical: 62}, "FC Aurelio", "Serie Alta", "Germany", 26},
		{"Ben Acheampong", 77, models.PosCAM, []models.Position{models.PosCM}, models.RarityCommon, models.Stats{Pace: 74, Shooting: 70, Passing: 76, Dribbling: 80, Defending: 36, Physical: 60}, "Harbour City", "Premier Coast", "Ghana", 22},
		{"Ivo Stanić", 73, models.PosCAM, nil, models.RarityCommon, models.Stats{Pace: 72, Shooting: 66, Passing: 72, Dribbling: 76, Defending: 34, Physical: 58}, "Atlético Brisas", "Liga Austral", "Croatia", 30},
		// Left midfielders
		{"Andrés Cuellar", 84, models.PosLM, []models.Position{models.PosLW}, models.RarityEpic, models.Stats{Pace: 88, Shooting: 72, Passing: 80, Dribbling: 86, Defending: 48, Physical: 62}, "CD Miravalle", "La Primera", "Colombia", 25},
		{"Milan Horváth", 80, models.PosLM, nil, models.RarityRare, models.Stats{Pace: 84, Shooting: 68, Passing: 76, Dribbling: 82, Defending: 46, Physical: 60}, "SV Nordwall", "Bundesliga Nord", "Hungary", 27},
		{"Theo Marchetti", 76, models.PosLM, []models.Position{models.PosCM}, models.RarityCommon, models.Stats{Pace: 80, Shooting: 62, Passing: 74, Dribbling: 78, Defending: 44, Physical: 58}, "FC Aurelio", "Serie Alta", "Italy", 23},
		{"Sipho Dlamini", 72, models.PosLM, nil, models.RarityCommon, models.Stats{Pace: 82, Shooting: 58, Passing: 68, Dribbling: 74, Defending: 40, Physical: 56}, "Harbour City", "Premier Coast", "South Africa", 21},
		{"Joaquín Salas", 70, models.PosLM, []models.Position{models.PosLB}, models.RarityCommon, models.Stats{Pace: 78, Shooting: 54, Passing: 66, Dribbling: 70, Defending: 46, Physical: 58}, "Atlético Brisas", "Liga Austral", "Argentina", 34},
		// Right midfielders
		{"Ayman El-Masry", 83, models.PosRM, []models.Position{models.PosRW}, models.RarityEpic, models.Stats{Pace: 89, Shooting: 70, Passing: 78, Dribbling: 85, Defending: 44, Physical: 61}, "FC Aurelio", "Serie Alta", "Egypt", 26},
		{"Lars Eriksen", 79, models.PosRM, nil, models.RarityRare, models.Stats{Pace: 85, Shooting: 66, Passing: 75, Dribbling: 80, Defending: 42, Physical: 60}, "SV Nordwall", "Bundesliga Nord", "Denmark", 28},
		{"Marco Tavano", 75, models.PosRM, []models.Position{models.PosCM}, models.RarityCommon, models.Stats{Pace: 81, Shooting: 60, Passing: 72, Dribbling: 76, Defending: 40, Physical: 58}, "Harbour City", "Premier Coast", "Italy", 24},
		{"Pablo Ferreyra", 71, models.PosRM, nil, models.RarityCommon, models.Stats{Pace: 80, Shooting: 56, Passing: 66, Dribbling: 72, Defending: 38, Physical: 56}, "Atlético Brisas", "Liga Austral", "Argentina", 22},
		{"Dmytro Kovalenko", 69, models.PosRM, []models.Position{models.PosRB}, models.RarityCommon, models.Stats{Pace: 78, Shooting: 52, Passing: 64, Dribbling: 68, Defending: 44, Physical: 60}, "CD Miravalle", "La Primera", "Ukraine", 20},
		// Left wingers
		{"Kwame Boateng", 90, models.PosLW, []models.Position{models.PosST}, models.RarityLegendary, models.Stats{Pace: 94, Shooting: 86, Passing: 78, Dribbling: 92, Defending: 32, Physical: 66}, "Harbour City", "Premier Coast", "Ghana", 25},
		{"Rúben Valente", 85, models.PosLW, []models.Position{models.PosLM}, models.RarityEpic, models.Stats{Pace: 91, Shooting: 80, Passing: 74, Dribbling: 88, Defending: 30, Physical: 62}, "CD Miravalle", "La Primera", "Portugal", 23},
		{"Jesper Holm", 80, models.PosLW, nil, models.RarityRare, models.Stats{Pace: 88, Shooting: 74, Passing: 70, Dribbling: 84, Defending: 28, Physical: 58}, "SV Nordwall", "Bundesliga Nord", "Sweden", 26},
		{"Ryo Tanaka", 76, models.PosLW, []models.Position{models.PosRW}, models.RarityCommon, models.Stats{Pace: 86, Shooting: 68, Passing: 66, Dribbling: 80, Defending: 26, Physical: 54}, "FC Aurelio", "Serie Alta", "Japan", 21},
		{"Franco Bellini", 72, models.PosLW, nil, models.RarityCommon, models.Stats{Pace: 84, Shooting: 64, Passing: 62, Dribbling: 76, Defending: 24, Physical: 52}, "Atlético Brisas", "Liga Austral", "Argentina", 19},
		// Right wingers
		{"Said Benkacem", 88, models.PosRW, []models.Position{models.PosCAM}, models.RarityLegendary, models.Stats{Pace: 92, Shooting: 84, Passing: 80, Dribbling: 91, Defending: 34, Physical: 64}, "FC Aurelio", "Serie Alta", "Morocco", 27},
		{"Oliver Nash", 84, models.PosRW, []models.Position{models.PosRM}, models.RarityEpic, models.Stats{Pace: 90, Shooting: 78, Passing: 74, Dribbling: 86, Defending: 30, Physical: 60}, "Harbour City", "Premier Coast", "England", 24},
		{"Davide Coralli", 80, models.PosRW, nil, models.RarityRare, models.Stats{Pace: 87, Shooting: 74, Passing: 70, Dribbling: 83, Defending: 28, Physical: 58}, "CD Miravalle", "La Primera", "Italy", 25},
		{"Jonas Lindqvist", 75, models.PosRW, []models.Position{models.PosST}, models.RarityCommon, models.Stats{Pace: 85, Shooting: 70, Passing: 64, Dribbling: 78, Defending: 24, Physical: 56}, "SV Nordwall", "Bundesliga Nord", "Sweden", 22},
		{"Hugo Casais", 71, models.PosRW, nil, models.RarityCommon, models.Stats{Pace: 83, Shooting: 64, Passing: 60, Dribbling: 74, Defending: 22, Physical: 54}, "Atlético Brisas", "Liga Austral", "Spain", 20},
		// Strikers
		{"Zlatko Borović", 92, models.PosST, nil, models.RarityLegendary, models.Stats{Pace: 86, Shooting: 93, Passing: 72, Dribbling: 85, Defending: 36, Physical: 84}, "SV Nordwall", "Bundesliga Nord", "Croatia", 29},
		{"Victor Ndiaye", 87, models.PosST, []models.Position{models.PosLW}, models.RarityEpic, models.Stats{Pace: 90, Shooting: 87, Passing: 66, Dribbling: 82, Defending: 32, Physical: 80}, "FC Aurelio", "Serie Alta", "Senegal", 26},
		{"Tom Breckenridge", 83, models.PosST, nil, models.RarityRare, models.Stats{Pace: 80, Shooting: 83, Passing: 62, Dribbling: 76, Defending: 30, Physical: 82}, "Harbour City", "Premier Coast", "Scotland", 28},
		{"Igor Shevchuk", 78, models.PosST, []models.Position{models.PosCAM}, models.RarityCommon, models.Stats{Pace: 76, Shooting: 78, Passing: 60, Dribbling: 72, Defending: 28, Physical: 78}, "CD Miravalle", "La Primera", "Ukraine", 25},
		{"Nico Aguilar", 74, models.PosST, nil, models.RarityCommon, models.Stats{Pace: 78, Shooting: 74, Passing: 56, Dribbling: 70, Defending: 26, Physical: 74}, "Atlético Brisas", "Liga Austral", "Mexico", 21},
	}

	items := make([]*models.DraftItem, 0, len(rows))
	for i, r := range rows {
		items = append(items, &models.DraftItem{
			ID:           i + 1,
			Name:         r.name,
			Rating:       r.rating,
			Position:     r.pos,
			AltPositions: r.alts,
			Rarity:       r.rarity,
			Stats:        r.stats,
			BasePrice:    BasePriceFor(r.rating, r.rarity),
			Club:         r.club,
			League:       r.league,
			Nation:       r.nation,
			Age:          r.age,
		})
	}
	return items
}
