package pantone

// defaultTable is the built-in Pantone Matching System (coated) subset.
var defaultTable = []Color{
	{Code: "Yellow C", Hex: "#FEDD00", Name: "Process Yellow"},
	{Code: "Yellow 012 C", Hex: "#FFD700", Name: "Golden Yellow"},
	{Code: "100 C", Hex: "#F6EB61", Name: "Pale Lemon"},
	{Code: "102 C", Hex: "#FCE300", Name: "Lemon Yellow"},
	{Code: "109 C", Hex: "#FFD100", Name: "Sunflower Yellow"},
	{Code: "116 C", Hex: "#FFCD00", Name: "Canary Yellow"},
	{Code: "123 C", Hex: "#FFC72C", Name: "Marigold"},
	{Code: "130 C", Hex: "#F2A900", Name: "Honey Gold"},
	{Code: "137 C", Hex: "#FFA300", Name: "Amber"},
	{Code: "144 C", Hex: "#ED8B00", Name: "Tangerine"},
	{Code: "151 C", Hex: "#FF8200", Name: "Bright Orange"},
	{Code: "158 C", Hex: "#E87722", Name: "Pumpkin"},
	{Code: "165 C", Hex: "#FF6720", Name: "Safety Orange"},
	{Code: "172 C", Hex: "#FA4616", Name: "Burnt Orange"},
	{Code: "Orange 021 C", Hex: "#FE5000", Name: "Process Orange"},
	{Code: "179 C", Hex: "#E03C31", Name: "Vermillion"},
	{Code: "Warm Red C", Hex: "#F9423A", Name: "Warm Red"},
	{Code: "Red 032 C", Hex: "#EF3340", Name: "Bright Red"},
	{Code: "185 C", Hex: "#E4002B", Name: "Scarlet"},
	{Code: "186 C", Hex: "#C8102E", Name: "True Red"},
	{Code: "187 C", Hex: "#A6192E", Name: "Cardinal Red"},
	{Code: "188 C", Hex: "#76232F", Name: "Maroon"},
	{Code: "192 C", Hex: "#E40046", Name: "Raspberry"},
	{Code: "199 C", Hex: "#D50032", Name: "Cherry Red"},
	{Code: "200 C", Hex: "#BA0C2F", Name: "Crimson"},
	{Code: "201 C", Hex: "#9D2235", Name: "Garnet"},
	{Code: "202 C", Hex: "#862633", Name: "Burgundy"},
	{Code: "7421 C", Hex: "#651D32", Name: "Wine"},
	{Code: "7427 C", Hex: "#97233F", Name: "Claret"},
	{Code: "Rubine Red C", Hex: "#CE0058", Name: "Rubine Red"},
	{Code: "Rhodamine Red C", Hex: "#E10098", Name: "Rhodamine Pink"},
	{Code: "212 C", Hex: "#F04E98", Name: "Hot Pink"},
	{Code: "219 C", Hex: "#DA1884", Name: "Magenta Pink"},
	{Code: "226 C", Hex: "#D0006F", Name: "Fuchsia"},
	{Code: "233 C", Hex: "#C6007E", Name: "Orchid"},
	{Code: "241 C", Hex: "#AF1685", Name: "Plum"},
	{Code: "Purple C", Hex: "#BB29BB", Name: "Purple"},
	{Code: "253 C", Hex: "#AD1AAC", Name: "Bright Violet"},
	{Code: "259 C", Hex: "#6D2077", Name: "Deep Plum"},
	{Code: "266 C", Hex: "#753BBD", Name: "Lavender Purple"},
	{Code: "267 C", Hex: "#5F259F", Name: "Royal Purple"},
	{Code: "268 C", Hex: "#582C83", Name: "Grape"},
	{Code: "Violet C", Hex: "#440099", Name: "Violet"},
	{Code: "272 C", Hex: "#7474C1", Name: "Periwinkle"},
	{Code: "Blue 072 C", Hex: "#10069F", Name: "Ultramarine Blue"},
	{Code: "Reflex Blue C", Hex: "#001489", Name: "Reflex Blue"},
	{Code: "280 C", Hex: "#012169", Name: "Royal Navy"},
	{Code: "281 C", Hex: "#00205B", Name: "Navy Blue"},
	{Code: "282 C", Hex: "#041E42", Name: "Midnight Navy"},
	{Code: "285 C", Hex: "#0072CE", Name: "Bright Blue"},
	{Code: "286 C", Hex: "#0033A0", Name: "Royal Blue"},
	{Code: "287 C", Hex: "#003087", Name: "Cobalt Blue"},
	{Code: "288 C", Hex: "#002D72", Name: "Dark Cobalt"},
	{Code: "289 C", Hex: "#0C2340", Name: "Ink Blue"},
	{Code: "293 C", Hex: "#003DA5", Name: "Sapphire"},
	{Code: "294 C", Hex: "#002F6C", Name: "Admiral Blue"},
	{Code: "295 C", Hex: "#002855", Name: "Oxford Blue"},
	{Code: "Process Blue C", Hex: "#0085CA", Name: "Process Cyan"},
	{Code: "299 C", Hex: "#00A3E0", Name: "Sky Blue"},
	{Code: "300 C", Hex: "#005EB8", Name: "Azure"},
	{Code: "301 C", Hex: "#004B87", Name: "Steel Blue"},
	{Code: "306 C", Hex: "#00B5E2", Name: "Bright Cyan"},
	{Code: "312 C", Hex: "#00A9CE", Name: "Aqua"},
	{Code: "320 C", Hex: "#009CA6", Name: "Teal"},
	{Code: "321 C", Hex: "#008C95", Name: "Deep Teal"},
	{Code: "327 C", Hex: "#00857D", Name: "Jade"},
	{Code: "334 C", Hex: "#009775", Name: "Sea Green"},
	{Code: "Green C", Hex: "#00AB84", Name: "Process Green"},
	{Code: "340 C", Hex: "#00965E", Name: "Emerald"},
	{Code: "347 C", Hex: "#009A44", Name: "Kelly Green"},
	{Code: "348 C", Hex: "#00843D", Name: "Forest Green"},
	{Code: "349 C", Hex: "#046A38", Name: "Hunter Green"},
	{Code: "354 C", Hex: "#00B140", Name: "Grass Green"},
	{Code: "356 C", Hex: "#007A33", Name: "Pine"},
	{Code: "361 C", Hex: "#43B02A", Name: "Leaf Green"},
	{Code: "368 C", Hex: "#78BE20", Name: "Lime"},
	{Code: "375 C", Hex: "#97D700", Name: "Chartreuse"},
	{Code: "382 C", Hex: "#C4D600", Name: "Citron"},
	{Code: "802 C", Hex: "#44D62C", Name: "Neon Lime"},
	{Code: "7548 C", Hex: "#FFC600", Name: "Saffron"},
	{Code: "7563 C", Hex: "#D69A2D", Name: "Mustard"},
	{Code: "871 C", Hex: "#84754E", Name: "Metallic Gold"},
	{Code: "877 C", Hex: "#8A8D8F", Name: "Metallic Silver"},
	{Code: "Cool Gray 1 C", Hex: "#D9D9D6", Name: "Light Gray"},
	{Code: "Cool Gray 5 C", Hex: "#B1B3B3", Name: "Silver Gray"},
	{Code: "Cool Gray 7 C", Hex: "#97999B", Name: "Cool Gray"},
	{Code: "Cool Gray 9 C", Hex: "#75787B", Name: "Slate Gray"},
	{Code: "Cool Gray 11 C", Hex: "#53565A", Name: "Dark Gray"},
	{Code: "Warm Gray 1 C", Hex: "#D7D2CB", Name: "Warm Grey"},
	{Code: "Warm Gray 11 C", Hex: "#6E6259", Name: "Taupe"},
	{Code: "425 C", Hex: "#54585A", Name: "Graphite"},
	{Code: "430 C", Hex: "#7C878E", Name: "Pewter"},
	{Code: "432 C", Hex: "#333F48", Name: "Gunmetal"},
	{Code: "433 C", Hex: "#1D252D", Name: "Off Black"},
	{Code: "426 C", Hex: "#25282A", Name: "Charcoal Black"},
	{Code: "Black C", Hex: "#2D2926", Name: "Black"},
	{Code: "469 C", Hex: "#693F23", Name: "Coffee Brown"},
	{Code: "476 C", Hex: "#4E3629", Name: "Dark Chocolate"},
	{Code: "478 C", Hex: "#703F2A", Name: "Chestnut Brown"},
	{Code: "484 C", Hex: "#9A3324", Name: "Rust"},
	{Code: "4625 C", Hex: "#4F2C1D", Name: "Espresso"},
	{Code: "7577 C", Hex: "#E0592A", Name: "Terracotta"},
}

// DefaultTable returns a copy of the built-in reference table.
func DefaultTable() []Color {
	out := make([]Color, len(defaultTable))
	copy(out, defaultTable)
	return out
}
