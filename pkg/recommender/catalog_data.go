package recommender

// defaultDestinations es la tabla curada a mano que se compila con el binario.
// El orden importa: es el criterio de desempate del ranking.
var defaultDestinations = []Destination{
	{Name: "Holbox, México", Tags: []TripTypeTag{TagBeaches, TagNature, TagSpa}, DailyCost: 120, IdealFor: Couple},
	{Name: "Tulum, México", Tags: []TripTypeTag{TagBeaches, TagNightlife, TagCultural, TagSpa}, DailyCost: 200, IdealFor: Friends},
	{Name: "Kioto, Japón", Tags: []TripTypeTag{TagCultural, TagGastronomy, TagNature, TagFestivals}, DailyCost: 250, IdealFor: Couple},
	{Name: "Oaxaca de Juárez, México", Tags: []TripTypeTag{TagCultural, TagGastronomy, TagFestivals}, DailyCost: 100, IdealFor: Solo},
	{Name: "Bangkok, Tailandia", Tags: []TripTypeTag{TagCultural, TagGastronomy, TagNightlife}, DailyCost: 130, IdealFor: Friends},
	{Name: "Buenos Aires, Argentina", Tags: []TripTypeTag{TagCultural, TagGastronomy, TagNightlife}, DailyCost: 130, IdealFor: Couple},
	{Name: "Riviera Maya, México", Tags: []TripTypeTag{TagBeaches, TagNature, TagSpa}, DailyCost: 250, IdealFor: Family},
	{Name: "Roma, Italia", Tags: []TripTypeTag{TagCultural, TagGastronomy, TagShopping}, DailyCost: 270, IdealFor: Couple},
	{Name: "Ciudad de México, México", Tags: []TripTypeTag{TagCultural, TagGastronomy, TagNightlife, TagFestivals}, DailyCost: 110, IdealFor: Solo},
	{Name: "San Miguel de Allende, México", Tags: []TripTypeTag{TagCultural, TagGastronomy, TagSpa}, DailyCost: 60, IdealFor: Couple},
	{Name: "Puerto Escondido, México", Tags: []TripTypeTag{TagBeaches, TagNightlife, TagNature}, DailyCost: 125, IdealFor: Friends},
	{Name: "Medellín, Colombia", Tags: []TripTypeTag{TagCultural, TagNightlife, TagNature}, DailyCost: 65, IdealFor: Friends},
	{Name: "Lisboa, Portugal", Tags: []TripTypeTag{TagCultural, TagGastronomy, TagNightlife}, DailyCost: 190, IdealFor: Couple},
	{Name: "Praga, República Checa", Tags: []TripTypeTag{TagCultural, TagNightlife, TagShopping}, DailyCost: 200, IdealFor: Friends},
	{Name: "Chiang Mai, Tailandia", Tags: []TripTypeTag{TagCultural, TagNature, TagGastronomy, TagSpa}, DailyCost: 105, IdealFor: Solo},
	{Name: "Cusco, Perú", Tags: []TripTypeTag{TagCultural, TagNature, TagGastronomy}, DailyCost: 110, IdealFor: Solo},
	{Name: "Mazatlán, México", Tags: []TripTypeTag{TagBeaches, TagNightlife, TagGastronomy, TagFestivals}, DailyCost: 150, IdealFor: Family},
	{Name: "Palenque, México", Tags: []TripTypeTag{TagCultural, TagNature}, DailyCost: 90, IdealFor: Solo},
	{Name: "Viena, Austria", Tags: []TripTypeTag{TagCultural, TagGastronomy, TagFestivals}, DailyCost: 195, IdealFor: Couple},
	{Name: "Ciudad del Cabo, Sudáfrica", Tags: []TripTypeTag{TagNature, TagCultural, TagGastronomy, TagBeaches}, DailyCost: 190, IdealFor: Couple},
	{Name: "Río de Janeiro, Brasil", Tags: []TripTypeTag{TagBeaches, TagNightlife, TagNature, TagFestivals}, DailyCost: 148, IdealFor: Friends},
	{Name: "Dublín, Irlanda", Tags: []TripTypeTag{TagCultural, TagNightlife, TagGastronomy}, DailyCost: 210, IdealFor: Friends},
	{Name: "Mérida, México", Tags: []TripTypeTag{TagCultural, TagGastronomy, TagNature}, DailyCost: 100, IdealFor: Family},
	{Name: "Marrakech, Marruecos", Tags: []TripTypeTag{TagCultural, TagGastronomy, TagNightlife}, DailyCost: 85, IdealFor: Solo},
	{Name: "Bacalar, México", Tags: []TripTypeTag{TagBeaches, TagNature, TagSpa}, DailyCost: 75, IdealFor: Couple},
	{Name: "Guadalajara, México", Tags: []TripTypeTag{TagCultural, TagGastronomy, TagNightlife, TagFestivals}, DailyCost: 85, IdealFor: Friends},
	{Name: "Puebla, México", Tags: []TripTypeTag{TagCultural, TagGastronomy}, DailyCost: 60, IdealFor: Family},
	{Name: "San Sebastián, España", Tags: []TripTypeTag{TagGastronomy, TagBeaches, TagCultural}, DailyCost: 220, IdealFor: Couple},
	{Name: "Florencia, Italia", Tags: []TripTypeTag{TagCultural, TagGastronomy}, DailyCost: 190, IdealFor: Couple},
	{Name: "Edimburgo, Escocia", Tags: []TripTypeTag{TagCultural, TagNightlife, TagFestivals}, DailyCost: 230, IdealFor: Friends},
	{Name: "Oporto, Portugal", Tags: []TripTypeTag{TagCultural, TagGastronomy, TagNightlife}, DailyCost: 110, IdealFor: Couple},
	{Name: "Chicago, Estados Unidos", Tags: []TripTypeTag{TagGastronomy, TagFestivals, TagNightlife}, DailyCost: 250, IdealFor: Friends},
	{Name: "Cartagena, Colombia", Tags: []TripTypeTag{TagBeaches, TagCultural, TagNightlife}, DailyCost: 120, IdealFor: Couple},
	{Name: "Valencia, España", Tags: []TripTypeTag{TagCultural, TagGastronomy, TagBeaches}, DailyCost: 140, IdealFor: Family},
	{Name: "Budapest, Hungría", Tags: []TripTypeTag{TagCultural, TagNightlife, TagGastronomy}, DailyCost: 160, IdealFor: Friends},
	{Name: "Zacatecas, México", Tags: []TripTypeTag{TagCultural, TagNightlife}, DailyCost: 70, IdealFor: Couple},
	{Name: "Morelia, México", Tags: []TripTypeTag{TagCultural, TagGastronomy}, DailyCost: 80, IdealFor: Family},
	{Name: "Ixtapa-Zihuatanejo, México", Tags: []TripTypeTag{TagBeaches, TagGastronomy, TagNature}, DailyCost: 130, IdealFor: Family},
	{Name: "Campeche, México", Tags: []TripTypeTag{TagCultural, TagBeaches, TagGastronomy}, DailyCost: 90, IdealFor: Couple},
	{Name: "Monterrey, México", Tags: []TripTypeTag{TagGastronomy, TagNature, TagNightlife}, DailyCost: 110, IdealFor: Friends},
	{Name: "Taxco, México", Tags: []TripTypeTag{TagCultural, TagGastronomy}, DailyCost: 75, IdealFor: Couple},
	{Name: "Veracruz, México", Tags: []TripTypeTag{TagBeaches, TagNightlife, TagCultural}, DailyCost: 95, IdealFor: Family},
	{Name: "Tequila, México", Tags: []TripTypeTag{TagGastronomy, TagCultural, TagFestivals}, DailyCost: 100, IdealFor: Friends},
	{Name: "Huatulco, México", Tags: []TripTypeTag{TagBeaches, TagNature}, DailyCost: 140, IdealFor: Family},
	{Name: "Chihuahua, México", Tags: []TripTypeTag{TagNature, TagCultural}, DailyCost: 120, IdealFor: Solo},
	{Name: "Berlín, Alemania", Tags: []TripTypeTag{TagCultural, TagNightlife, TagFestivals}, DailyCost: 150, IdealFor: Friends},
	{Name: "Lima, Perú", Tags: []TripTypeTag{TagGastronomy, TagCultural}, DailyCost: 70, IdealFor: Solo},
	{Name: "Sídney, Australia", Tags: []TripTypeTag{TagBeaches, TagNature, TagNightlife}, DailyCost: 200, IdealFor: Friends},
	{Name: "Estocolmo, Suecia", Tags: []TripTypeTag{TagCultural, TagNature, TagGastronomy}, DailyCost: 180, IdealFor: Couple},
	{Name: "Nueva Orleans, Estados Unidos", Tags: []TripTypeTag{TagGastronomy, TagFestivals, TagNightlife, TagCultural}, DailyCost: 220, IdealFor: Friends},
	{Name: "Cracovia, Polonia", Tags: []TripTypeTag{TagCultural, TagNightlife}, DailyCost: 80, IdealFor: Solo},
	{Name: "Ho Chi Minh, Vietnam", Tags: []TripTypeTag{TagGastronomy, TagCultural, TagNightlife}, DailyCost: 55, IdealFor: Solo},
	{Name: "Atenas, Grecia", Tags: []TripTypeTag{TagCultural, TagGastronomy, TagBeaches}, DailyCost: 130, IdealFor: Couple},
	{Name: "Bali, Indonesia", Tags: []TripTypeTag{TagNature, TagBeaches, TagCultural}, DailyCost: 90, IdealFor: Couple},
	{Name: "Vancouver, Canadá", Tags: []TripTypeTag{TagNature, TagGastronomy, TagCultural}, DailyCost: 190, IdealFor: Family},
	{Name: "Zanzíbar, Tanzania", Tags: []TripTypeTag{TagBeaches, TagCultural, TagNature}, DailyCost: 110, IdealFor: Couple},
}

// DefaultCatalog construye el catálogo incorporado. La tabla es estática y
// válida, por eso un error aquí es un bug de programación.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultDestinations)
	if err != nil {
		panic("recommender: catálogo incorporado inválido: " + err.Error())
	}
	return c
}
