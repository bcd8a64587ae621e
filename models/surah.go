package models

// Surah is one chapter in the recitation catalog
type Surah struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Verses int    `json:"verses"`
}

// Juz30Surahs is the catalog students pick from when requesting an
// evaluation. Names use the Indonesian transliteration the rest of the
// app uses (surah_name is stored as this exact text).
var Juz30Surahs = []Surah{
	{78, "An-Naba", 40},
	{79, "An-Nazi'at", 46},
	{80, "'Abasa", 42},
	{81, "At-Takwir", 29},
	{82, "Al-Infitar", 19},
	{83, "Al-Mutaffifin", 36},
	{84, "Al-Insyiqaq", 25},
	{85, "Al-Buruj", 22},
	{86, "At-Tariq", 17},
	{87, "Al-A'la", 19},
	{88, "Al-Ghasyiyah", 26},
	{89, "Al-Fajr", 30},
	{90, "Al-Balad", 20},
	{91, "Asy-Syams", 15},
	{92, "Al-Lail", 21},
	{93, "Ad-Dhuha", 11},
	{94, "Asy-Syarh", 8},
	{95, "At-Tin", 8},
	{96, "Al-'Alaq", 19},
	{97, "Al-Qadr", 5},
	{98, "Al-Bayyinah", 8},
	{99, "Az-Zalzalah", 8},
	{100, "Al-'Adiyat", 11},
	{101, "Al-Qari'ah", 11},
	{102, "At-Takatsur", 8},
	{103, "Al-'Asr", 3},
	{104, "Al-Humazah", 9},
	{105, "Al-Fil", 5},
	{106, "Quraisy", 4},
	{107, "Al-Ma'un", 7},
	{108, "Al-Kautsar", 3},
	{109, "Al-Kafirun", 6},
	{110, "An-Nasr", 3},
	{111, "Al-Lahab", 5},
	{112, "Al-Ikhlas", 4},
	{113, "Al-Falaq", 5},
	{114, "An-Nas", 6},
}
