package scraper

// tableEntry pairs a URL-slug token with its display label.
type tableEntry struct {
	token string
	label string
}

// Tables are ordered slices, not maps: the first matching entry wins, and
// that iteration order is part of the parsing contract.

var propertyTypes = []tableEntry{
	{"lagenhet", "Lägenhet"},
	{"villa", "Villa"},
	{"radhus", "Radhus"},
	{"fritidshus", "Fritidshus"},
	{"tomt", "Tomt"},
	{"par", "Parhus"},
	{"kedjehus", "Kedjehus"},
	{"gard", "Gård"},
}

var municipalities = []tableEntry{
	{"stockholms-kommun", "Stockholm"},
	{"goteborgs-kommun", "Göteborg"},
	{"goteborgs-stad", "Göteborg"},
	{"malmo-kommun", "Malmö"},
	{"malmo-stad", "Malmö"},
	{"uppsalas-kommun", "Uppsala"},
	{"uppsala-kommun", "Uppsala"},
	{"vasteras-kommun", "Västerås"},
	{"vasteras-stad", "Västerås"},
	{"orebro-kommun", "Örebro"},
	{"linkopings-kommun", "Linköping"},
	{"helsingborgs-kommun", "Helsingborg"},
	{"helsingborgs-stad", "Helsingborg"},
	{"jonkopings-kommun", "Jönköping"},
	{"norrkopings-kommun", "Norrköping"},
	{"lunds-kommun", "Lund"},
	{"umea-kommun", "Umeå"},
	{"gavle-kommun", "Gävle"},
	{"boras-kommun", "Borås"},
	{"boras-stad", "Borås"},
	{"sodertalje-kommun", "Södertälje"},
	{"eskilstuna-kommun", "Eskilstuna"},
	{"halmstads-kommun", "Halmstad"},
	{"vaxjo-kommun", "Växjö"},
	{"karlstads-kommun", "Karlstad"},
	{"sundsvalls-kommun", "Sundsvall"},
	{"trollhattans-kommun", "Trollhättan"},
	{"ostersunds-kommun", "Östersund"},
	{"kalmar-kommun", "Kalmar"},
	{"faluns-kommun", "Falun"},
	{"nacka-kommun", "Nacka"},
	{"solna-kommun", "Solna"},
	{"solna-stad", "Solna"},
	{"sollentuna-kommun", "Sollentuna"},
	{"taby-kommun", "Täby"},
	{"lidingo-kommun", "Lidingö"},
	{"lidingo-stad", "Lidingö"},
	{"danderyds-kommun", "Danderyd"},
	{"huddinge-kommun", "Huddinge"},
	{"jarfalla-kommun", "Järfälla"},
	{"haninge-kommun", "Haninge"},
	{"botkyrka-kommun", "Botkyrka"},
	{"tyreso-kommun", "Tyresö"},
	{"sundbybergs-kommun", "Sundbyberg"},
	{"sundbybergs-stad", "Sundbyberg"},
	{"vallentuna-kommun", "Vallentuna"},
	{"varmdo-kommun", "Värmdö"},
	{"osterakers-kommun", "Österåker"},
	{"salems-kommun", "Salem"},
	{"upplands-vasby-kommun", "Upplands Väsby"},
	{"norrtälje-kommun", "Norrtälje"},
	{"sigtuna-kommun", "Sigtuna"},
}
