// Package i18n holds the UI label translations served alongside the
// persisted language setting. English is the default language.
package i18n

import (
	"sort"
	"strings"
)

// DefaultLanguage is used when no language has been persisted.
const DefaultLanguage = "en"

// labels maps language code to UI label key/value pairs.
var labels = map[string]map[string]string{
	"en": {
		"title":           "Flight Search Engine",
		"settings":        "Settings",
		"language":        "Language",
		"from":            "From",
		"to":              "To",
		"departure":       "Departure",
		"search":          "Search",
		"searching":       "Searching...",
		"stops":           "Stops",
		"nonstop":         "Nonstop",
		"price":           "Price",
		"airlines":        "Airlines",
		"viewMore":        "View more",
		"sortBest":        "Sort: Best value",
		"sortCheapest":    "Sort: Cheapest",
		"sortFastest":     "Sort: Fastest",
		"sortFewestStops": "Sort: Fewest stops",
		"priceTrendsTitle": "Price trends by hour",
		"noFlightsTitle":   "No flights found",
		"noFlightsSubtitle": "Try adjusting your search criteria or filters",
		"tripDetails":     "Trip details",
		"travelTime":      "Travel time",
		"layover":         "layover",
	},
	"de": {
		"title":           "Flugsuche",
		"settings":        "Einstellungen",
		"language":        "Sprache",
		"from":            "Von",
		"to":              "Nach",
		"departure":       "Abflug",
		"search":          "Suchen",
		"searching":       "Suche…",
		"stops":           "Stopps",
		"nonstop":         "Direkt",
		"price":           "Preis",
		"airlines":        "Airlines",
		"viewMore":        "Mehr anzeigen",
		"sortBest":        "Sortieren: Bestes Preis‑Leistungs‑Verhältnis",
		"sortCheapest":    "Sortieren: Günstigster Preis",
		"sortFastest":     "Sortieren: Schnellste",
		"sortFewestStops": "Sortieren: Wenigste Stopps",
		"priceTrendsTitle": "Preistrends nach Stunde",
		"noFlightsTitle":   "Keine Flüge gefunden",
		"noFlightsSubtitle": "Versuche, Suche oder Filter anzupassen",
		"tripDetails":     "Reisedetails",
		"travelTime":      "Reisezeit",
		"layover":         "Umstieg",
	},
	"es": {
		"title":           "Búsqueda de vuelos",
		"settings":        "Ajustes",
		"language":        "Idioma",
		"from":            "Desde",
		"to":              "Hacia",
		"departure":       "Salida",
		"search":          "Buscar",
		"searching":       "Buscando…",
		"stops":           "Escalas",
		"nonstop":         "Directo",
		"price":           "Precio",
		"airlines":        "Aerolíneas",
		"viewMore":        "Ver más",
		"sortBest":        "Ordenar: Mejor valor",
		"sortCheapest":    "Ordenar: Más barato",
		"sortFastest":     "Ordenar: Más rápido",
		"sortFewestStops": "Ordenar: Menos escalas",
		"priceTrendsTitle": "Tendencias de precio por hora",
		"noFlightsTitle":   "No se encontraron vuelos",
		"noFlightsSubtitle": "Prueba ajustando tu búsqueda o filtros",
		"tripDetails":     "Detalles del viaje",
		"travelTime":      "Tiempo de viaje",
		"layover":         "escala",
	},
}

// IsSupported reports whether the given language code has translations.
func IsSupported(lang string) bool {
	_, ok := labels[lang]
	return ok
}

// SupportedList returns the supported language codes as a sorted,
// comma-separated string for error messages.
func SupportedList() string {
	codes := make([]string, 0, len(labels))
	for code := range labels {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return strings.Join(codes, ", ")
}

// For returns the label table for the given language, falling back to
// English for unknown codes.
func For(lang string) map[string]string {
	if table, ok := labels[lang]; ok {
		return table
	}
	return labels[DefaultLanguage]
}
