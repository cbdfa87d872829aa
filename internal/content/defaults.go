package content

func unsplash(id string) string {
	return "https://images.unsplash.com/" + id + "?q=80&w=1000&auto=format&fit=crop"
}

// Default returns the built-in VITTIN catalog.
func Default() *Catalog {
	return &Catalog{
		LatestVideo: "Análise Estrutural: Pontes Romanas",
		Videos: []Video{
			{
				ID:          "1",
				Title:       "A Engenharia por trás das Turbinas",
				Category:    "Engenharia Mecânica",
				Thumbnail:   unsplash("photo-1535930248460-c3d3869d0c6d"),
				Views:       "250K",
				Duration:    "14:20",
				Description: "Como transformamos vento e calor em energia cinética massiva? Uma análise detalhada dos componentes.",
			},
			{
				ID:          "2",
				Title:       "O Fim dos Dinossauros: Geocronologia",
				Category:    "Paleontologia",
				Thumbnail:   unsplash("photo-1519702209772-23c343b9c96b"),
				Views:       "180K",
				Duration:    "22:15",
				Description: "Analisando a camada K-Pg e os isótopos que revelam a data exata do impacto de Chicxulub.",
			},
			{
				ID:          "3",
				Title:       "James Webb: Olhando para o Passado",
				Category:    "Astronomia",
				Thumbnail:   unsplash("photo-1614730341194-75c607400070"),
				Views:       "320K",
				Duration:    "18:45",
				Description: "As primeiras galáxias e a luz infravermelha. O que o novo telescópio realmente descobriu?",
			},
		},
		Themes: []Theme{
			{Name: "Mecânica", Icon: "hammer", Description: "Engrenagens & Motores"},
			{Name: "Paleonto", Icon: "bone", Description: "Fósseis & História"},
			{Name: "Cosmos", Icon: "rocket", Description: "Astronomia & Espaço"},
			{Name: "Civil", Icon: "globe", Description: "Estruturas & Obras"},
			{Name: "Tempo", Icon: "clock", Description: "Geocronologia"},
			{Name: "Tech", Icon: "cpu", Description: "Futuro & Inovação"},
		},
		About: []AboutItem{
			{Title: "Engenharia Civil", Description: "Análise estrutural e grandes obras."},
			{Title: "Paleontologia Amadora", Description: "Colecionador e entusiasta de fósseis."},
			{Title: "+500k Inscritos", Description: "Comunidade apaixonada por ciência."},
			{Title: "Didática Visual", Description: "Explicações complexas simplificadas."},
		},
		Resources: []Resource{
			{Label: "Modelos 3D", Icon: "download"},
			{Label: "Referências", Icon: "search"},
			{Label: "Comunidade", Icon: "globe"},
			{Label: "Wallpaper", Icon: "rocket"},
		},
	}
}
