package speech

// demoVoices is the catalog served when no speech credentials are present.
// IDs mirror common provider presets so a later credential swap keeps the
// frontend picker working unchanged.
func demoVoices() []Voice {
	names := []struct {
		id   string
		name string
	}{
		{"rachel", "Rachel"},
		{"drew", "Drew"},
		{"clyde", "Clyde"},
		{"paul", "Paul"},
		{"domi", "Domi"},
		{"dave", "Dave"},
		{"fin", "Fin"},
		{"sarah", "Sarah"},
		{"antoni", "Antoni"},
		{"thomas", "Thomas"},
	}

	voices := make([]Voice, 0, len(names))
	for _, n := range names {
		voices = append(voices, Voice{ID: n.id, Name: n.name, PreviewURL: nil})
	}
	return voices
}
