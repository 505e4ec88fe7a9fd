package demo

func SampleCompanies() []CompanyConfig {
	return []CompanyConfig{
		{Name: "CD Projekt Red", Founded: 2002, Website: "https://www.cdprojektred.com", Type: "Developer & Publisher"},
		{Name: "FromSoftware", Founded: 1986, Website: "https://www.fromsoftware.jp", CEO: "Hidetaka Miyazaki", Type: "Developer"},
		{Name: "Bandai Namco Entertainment", Website: "https://www.bandainamcoent.com", Type: "Publisher"},
		{Name: "Supergiant Games", Founded: 2009, Website: "https://www.supergiantgames.com", Type: "Developer & Publisher"},
		{Name: "Valve", Founded: 1996, Website: "https://www.valvesoftware.com", CEO: "Gabe Newell", Type: "Developer & Publisher"},
	}
}

func SampleGenres() []string {
	return []string{"Action", "RPG", "Open World", "Roguelike", "Platformer", "Puzzle", "Shooter"}
}

func SampleOutlets() []OutletConfig {
	return []OutletConfig{
		{Name: "IGN", Website: "https://www.ign.com", Founded: 1996},
		{Name: "GameSpot", Website: "https://www.gamespot.com", Founded: 1996},
		{Name: "Eurogamer", Website: "https://www.eurogamer.net", Founded: 1999},
		{Name: "PC Gamer", Website: "https://www.pcgamer.com", Founded: 1993},
	}
}

func SampleGames() []GameConfig {
	return []GameConfig{
		{
			Title:       "The Witcher 3: Wild Hunt",
			Year:        2015,
			Description: "Geralt of Rivia searches for his adopted daughter across a war-torn open world.",
			Developer:   "CD Projekt Red",
			Publisher:   "CD Projekt Red",
			Genres:      []string{"Action", "RPG", "Open World"},
			Reviews: []ReviewConfig{
				{Outlet: "IGN", Score: 93, Summary: "A huge world full of memorable quests."},
				{Outlet: "GameSpot", Score: 100},
				{Outlet: "PC Gamer", Score: 92},
			},
			Requirements: []RequirementConfig{
				{Tier: "Low", StorageGB: 50, RAMGB: 6, CPUGHz: 3.3, GPUTflops: 1.9, VRAMGB: 2},
				{Tier: "High", StorageGB: 50, RAMGB: 8, CPUGHz: 3.5, GPUTflops: 3.5, VRAMGB: 4},
			},
		},
		{
			Title:       "Elden Ring",
			Year:        2022,
			Description: "An open world action RPG set in the Lands Between.",
			Developer:   "FromSoftware",
			Publisher:   "Bandai Namco Entertainment",
			Genres:      []string{"Action", "RPG", "Open World"},
			Reviews: []ReviewConfig{
				{Outlet: "IGN", Score: 100, Summary: "A new high point for the open world genre."},
				{Outlet: "Eurogamer", Score: 100},
			},
			Requirements: []RequirementConfig{
				{Tier: "Low", StorageGB: 60, RAMGB: 12, CPUGHz: 3.6, GPUTflops: 4.4, VRAMGB: 3},
				{Tier: "Medium", StorageGB: 60, RAMGB: 16, CPUGHz: 3.6, GPUTflops: 6.5, VRAMGB: 8},
			},
		},
		{
			Title:     "Dark Souls",
			Year:      2011,
			Developer: "FromSoftware",
			Publisher: "Bandai Namco Entertainment",
			Genres:    []string{"Action", "RPG"},
			Reviews: []ReviewConfig{
				{Outlet: "IGN", Score: 90},
				{Outlet: "GameSpot", Score: 95},
			},
		},
		{
			Title:       "Hades",
			Year:        2020,
			Description: "Zagreus fights his way out of the Underworld.",
			Developer:   "Supergiant Games",
			Publisher:   "Supergiant Games",
			Genres:      []string{"Action", "Roguelike"},
			Reviews: []ReviewConfig{
				{Outlet: "IGN", Score: 90},
				{Outlet: "PC Gamer", Score: 92, Summary: "Every run tells a little more of the story."},
			},
			Requirements: []RequirementConfig{
				{Tier: "Low", StorageGB: 15, RAMGB: 4, CPUGHz: 2.4, VRAMGB: 1},
			},
		},
		{
			Title:     "Portal 2",
			Year:      2011,
			Developer: "Valve",
			Publisher: "Valve",
			Genres:    []string{"Puzzle"},
			Reviews: []ReviewConfig{
				{Outlet: "GameSpot", Score: 90},
				{Outlet: "Eurogamer", Score: 100},
			},
			Requirements: []RequirementConfig{
				{Tier: "Low", StorageGB: 8, RAMGB: 2, CPUGHz: 3.0, VRAMGB: -1},
			},
		},
		{
			Title:     "Half-Life 2",
			Year:      2004,
			Developer: "Valve",
			Publisher: "Valve",
			Genres:    []string{"Shooter", "Action"},
			Reviews: []ReviewConfig{
				{Outlet: "PC Gamer", Score: 98},
			},
		},
		{
			Title:       "Celeste",
			Year:        2018,
			Description: "Madeline climbs a mountain, and her own anxiety.",
			Genres:      []string{"Platformer"},
		},
	}
}
