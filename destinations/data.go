package destinations

// catalog is the destination grid in display order.
var catalog = []City{
	{Name: "Paris", Image: "https://loveincorporated.blob.core.windows.net/contentimages/fullsize/a8a9bce0-de89-417e-a65e-ecdaf23d1d59-paris-full-guide-update.jpg"},
	{Name: "Tokyo", Image: "https://wallpaperaccess.com/full/44164.jpg"},
	{Name: "New York", Image: "https://th.bing.com/th/id/R.cf34b93eb0a87fe2085efa649a47d521?rik=elSp%2bjkA%2fEBZfg&riu=http%3a%2f%2fbpc.h-cdn.co%2fassets%2f17%2f23%2f1600x800%2flandscape-1496690479-new-york-tourist-attractions.jpg&ehk=d4JFcY9X9JtMK1q7rWEbMjyZdOTPxQTN%2brP1qqHkwNw%3d&risl=&pid=ImgRaw&r=0"},
	{Name: "London", Image: "https://cdn.unifiedcommerce.com/content/product/large/5900511104042.jpg"},
	{Name: "Barcelona", Image: "https://wallpaperaccess.com/full/1322174.jpg"},
	{Name: "Rome", Image: "https://img.ex.co/image/upload/v1706818824/hv3rfvephstjqdmm3wft.jpg"},
	{Name: "Amsterdam", Image: "https://misstourist.com/wp-content/uploads/2023/12/2-1-Canal-Belt-Grachtengordel-%E2%80%93-best-area-for-couples-660x435@2x.jpg"},
	{Name: "Berlin", Image: "https://lp-cms-production.imgix.net/2019-06/GettyImages-475150263_super.jpg?auto=compress&fit=crop&fm=auto&sharp=10&vib=20&w=1200&h=800"},
	{Name: "Sydney", Image: "https://wallpapercave.com/wp/wp2684726.jpg"},
	{Name: "Dubai", Image: "https://wallpaperaccess.com/full/1735114.jpg"},
	{Name: "Bangkok", Image: "https://www.tripsavvy.com/thmb/ZtwK0eWCSDo4DQjEGi-IupGJ2I0=/5472x3648/filters:no_upscale():max_bytes(150000):strip_icc()/wat-arun-temple-bangkok-5c461eee46e0fb00016fe445.jpg"},
	{Name: "Singapore", Image: "https://www.stokedtotravel.com/wp-content/uploads/2020/11/Singapore-1.jpg"},
	{Name: "Istanbul", Image: "https://media.istockphoto.com/photos/stanbul-turkey-picture-id458012057?b=1&k=20&m=458012057&s=170667a&w=0&h=zBrkAjxV8Ser_DKekq6g9EWuPgXsNc8qktI3rpwoj0g="},
	{Name: "Prague", Image: "https://www.siliconrepublic.com/wp-content/uploads/2018/06/Prague_shutterstock_696131494-718x523.jpg"},
	{Name: "Vienna", Image: "https://tse4.mm.bing.net/th/id/OIP._WIfrR7zlI-s-kI9G9jxlAHaEK?w=1440&h=810&rs=1&pid=ImgDetMain&o=7&rm=3"},
	{Name: "Hong Kong", Image: "https://www.discoverhongkong.com/content/dam/dhk/intl/explore/tips-for-making-your-trip-to-hong-kong/tips-for-making-your-trip-to-hong-kong-1920x1080.jpg"},
	{Name: "Lisbon", Image: "https://wallpaperaccess.com/full/6712385.jpg"},
	{Name: "Seoul", Image: "https://www.agoda.com/wp-content/uploads/2024/08/Han-River-seoul-korea-1126x700-1.jpg"},
	{Name: "Los Angeles", Image: "https://s3.amazonaws.com/mentoring.redesign/s3fs-public/los-angeles.jpg"},
	{Name: "Chicago", Image: "https://gregbenzphotography.com/wp-content/uploads/2011/03/The-Bean-and-the-Chicago-Skyline.jpg"},
	{Name: "Rio De Janeiro", Image: "https://cdn.britannica.com/03/94403-050-03683FB0/Rio-de-Janeiro-Braz.jpg"},
	{Name: "Cape Town", Image: "https://www.earthsattractions.com/wp-content/uploads/2017/11/V_A_Waterfront-870x540.jpg"},
	{Name: "Vancouver", Image: "https://www.tripsavvy.com/thmb/DnXZn47c_DgjZWN50MzwZ4X2vT4=/960x0/filters:no_upscale():max_bytes(150000):strip_icc()/GettyImages-629829924-5bdb57f74cedfd0026ae431f.jpg"},
	{Name: "Mexico City", Image: "https://visitingmexico.com/wp-content/uploads/CDMX-scaled.jpeg"},
	{Name: "Buenos Aires", Image: "https://tse4.mm.bing.net/th/id/OIP.OgcsoZbwNF1Jo_gK4ZpiywHaFR?rs=1&pid=ImgDetMain&o=7&rm=3"},
	{Name: "Moscow", Image: "https://th.bing.com/th/id/R.88a84c08a8fecbd255b672d1d288da73?rik=3KgrNpjTVwOWCA&riu=http%3a%2f%2fwww.businessdestinations.com%2fwp-content%2fuploads%2f2015%2f02%2fMoscow.jpg&ehk=YNfQ7l5qpMwf7q6ED5ckY51DSRFL43xceZiBZAp3FA0%3d&risl=&pid=ImgRaw&r=0"},
	{Name: "Athens", Image: "https://tse4.mm.bing.net/th/id/OIP.TTGRnCk5fDpeblPAFOR4jgHaFj?rs=1&pid=ImgDetMain&o=7&rm=3"},
	{Name: "Cairo", Image: "https://media.cntraveler.com/photos/655cdf1d2d09a7e0b27741b5/16:9/w_2560%2Cc_limit/Cairo%2520Egypt_GettyImages-1370918272.jpg"},
	{Name: "Budapest", Image: "https://completecityguides.com/images/blog/full/best-europe-destinations/budapest-chain-bridge.jpg"},
	{Name: "Miami", Image: "https://tse1.mm.bing.net/th/id/OIP.ILRTrQmOGq8Sq-quxVhquwHaE8?rs=1&pid=ImgDetMain&o=7&rm=3"},
}

var details = map[string]Details{
	"Paris": {
		Attractions: []string{"Eiffel Tower", "Louvre Museum", "Montmartre"},
		Food:        []string{"Croissants at a local bakery", "Eclairs", "Macarons"},
		Sightseeing: []string{"Seine River Cruise", "Notre-Dame Area", "Palais-Royal Gardens"},
	},
	"Tokyo": {
		Attractions: []string{"Senso-ji Temple", "Meiji Shrine", "Shibuya Crossing"},
		Food:        []string{"Sushi at Tsukiji", "Ramen alleys", "Yakitori at Izakayas"},
		Sightseeing: []string{"Tokyo Skytree", "Ueno Park", "Imperial Palace"},
	},
	"New York": {
		Attractions: []string{"Statue of Liberty", "Central Park", "Metropolitan Museum"},
		Food:        []string{"Street Bagels", "$1 Pizza Slices", "Fine dining in Manhattan"},
		Sightseeing: []string{"Brooklyn Bridge Walk", "Alcatraz", "Times Square"},
	},
	"Rome": {
		Attractions: []string{"Colosseum", "Roman Forum", "Vatican Museums"},
		Food:        []string{"Carbonara", "Gelato", "Cacio e Pepe"},
		Sightseeing: []string{"Piazza Navona", "Trevi Fountain", "Spanish Steps"},
	},
	"London": {
		Attractions: []string{"Buckingham Palace", "Tower of London", "British Museum"},
		Food:        []string{"Fish and chips", "Full English breakfast", "Afternoon tea"},
		Sightseeing: []string{"Big Ben", "London Eye", "Tower Bridge"},
	},
	"Barcelona": {
		Attractions: []string{"Sagrada Familia", "Park Guell", "Las Ramblas"},
		Food:        []string{"Paella", "Tapas bars", "Churros"},
		Sightseeing: []string{"Gothic Quarter", "Montjuic Hill", "Casa Batlló"},
	},
	"Amsterdam": {
		Attractions: []string{"Anne Frank House", "Van Gogh Museum", "Rijksmuseum"},
		Food:        []string{"Stroopwafels", "Bitterballen", "Poffertjes"},
		Sightseeing: []string{"Canal Ring", "Vondelpark", "Jordaan"},
	},
	"Berlin": {
		Attractions: []string{"Brandenburg Gate", "Museum Island", "Reichstag Building"},
		Food:        []string{"Currywurst", "Döner Kebab", "Schnitzel"},
		Sightseeing: []string{"Berlin Wall Memorial", "Potsdamer Platz", "East Side Gallery"},
	},
	"Sydney": {
		Attractions: []string{"Sydney Opera House", "Sydney Harbour Bridge", "Taronga Zoo"},
		Food:        []string{"Fish and chips", "Meat pies", "Vegemite on toast"},
		Sightseeing: []string{"Bondi Beach", "The Rocks", "Darling Harbour"},
	},
	"Dubai": {
		Attractions: []string{"Burj Khalifa", "Dubai Mall", "Desert Safari"},
		Food:        []string{"Shawarma", "Kabsa", "Machboos"},
		Sightseeing: []string{"Dubai Fountain", "Palm Jumeirah", "Dubai Creek"},
	},
	"Bangkok": {
		Attractions: []string{"Grand Palace", "Wat Pho", "Chatuchak Weekend Market"},
		Food:        []string{"Pad Thai", "Som Tam", "Mango Sticky Rice"},
		Sightseeing: []string{"Chinatown", "Lumpini Park", "Suan Lum Night Market"},
	},
	"Singapore": {
		Attractions: []string{"Gardens by the Bay", "Marina Bay Sands", "Chinatown"},
		Food:        []string{"Hainanese Chicken Rice", "Laksa", "Rendang"},
		Sightseeing: []string{"Sentosa Island", "Orchard Road", "Marina Bay"},
	},
	"Istanbul": {
		Attractions: []string{"Hagia Sophia", "Blue Mosque", "Grand Bazaar"},
		Food:        []string{"Baklava", "Kofte", "Manti"},
		Sightseeing: []string{"Bosphorus Cruise", "Topkapi Palace", "Galata Bridge"},
	},
	"Prague": {
		Attractions: []string{"Prague Castle", "Charles Bridge", "Old Town Square"},
		Food:        []string{"Trdelník", "Goulash", "Czech Beer"},
		Sightseeing: []string{"Prague Astronomical Clock", "Wenceslas Square", "Petřin Hill"},
	},
	"Vienna": {
		Attractions: []string{"Schönbrunn Palace", "St. Stephen’s Cathedral", "Belvedere Palace"},
		Food:        []string{"Wiener Schnitzel", "Sachertorte", "Apfelstrudel"},
		Sightseeing: []string{"Vienna State Opera", "Hofburg Palace", "Naschmarkt"},
	},
	"Hong Kong": {
		Attractions: []string{"Victoria Peak", "Tian Tan Buddha (Big Buddha)", "Hong Kong Disneyland"},
		Food:        []string{"Dim Sum", "Roast Goose", "Egg Tarts"},
		Sightseeing: []string{"Victoria Harbour", "Star Ferry", "Temple Street Night Market"},
	},
	"Lisbon": {
		Attractions: []string{"Belém Tower", "Jerónimos Monastery", "Rossio Square"},
		Food:        []string{"Pastel de Nata", "Francesinha", "Bacalhau"},
		Sightseeing: []string{"Lisbon Cathedral", "Miradouros", "Tram 28"},
	},
	"Seoul": {
		Attractions: []string{"Gyeongbokgung Palace", "Bukchon Hanok Village", "N Seoul Tower"},
		Food:        []string{"Tteokbokki", "Kimchi", "Korean BBQ"},
		Sightseeing: []string{"Gangnam District", "Myeongdong", "Hongdae"},
	},
	"Los Angeles": {
		Attractions: []string{"Hollywood Sign", "Universal Studios", "Getty Center"},
		Food:        []string{"Street Tacos", "In-N-Out Burger", "Food truck fusion"},
		Sightseeing: []string{"Santa Monica Pier", "Venice Beach", "Griffith Observatory"},
	},
	"Chicago": {
		Attractions: []string{"Millennium Park (The Bean)", "Art Institute of Chicago", "Navy Pier"},
		Food:        []string{"Deep-dish pizza", "Chicago-style hot dogs", "Italian beef sandwiches"},
		Sightseeing: []string{"Chicago Riverwalk", "Skydeck at Willis Tower", "Magnificent Mile"},
	},
	"Rio De Janeiro": {
		Attractions: []string{"Christ the Redeemer", "Sugarloaf Mountain", "Copacabana Beach"},
		Food:        []string{"Feijoada", "Pão de Açúcar", "Açaí Bowl"},
		Sightseeing: []string{"Selarón Steps", "Lapa Arches", "Ipanema Beach"},
	},
	"Cape Town": {
		Attractions: []string{"Table Mountain", "Robben Island", "Cape of Good Hope"},
		Food:        []string{"Braai", "Bobotie", "Malva Pudding"},
		Sightseeing: []string{"V&A Waterfront", "Cape Town Stadium", "District Six Museum"},
	},
	"Vancouver": {
		Attractions: []string{"Stanley Park", "Capilano Suspension Bridge", "Granville Island"},
		Food:        []string{"Salmon dishes", "Poutine", "Sushi"},
		Sightseeing: []string{"Gastown Steam Clock", "English Bay", "Grouse Mountain"},
	},
	"Mexico City": {
		Attractions: []string{"Zócalo", "Teotihuacán", "Palacio de Bellas Artes"},
		Food:        []string{"Tacos al Pastor", "Mole Poblano", "Chiles en Nogada"},
		Sightseeing: []string{"Palacio de Bellas Artes", "Templo Mayor", "Catedral Metropolitana"},
	},
	"Buenos Aires": {
		Attractions: []string{"Casa Rosada", "Teatro Colón", "Recoleta Cemetery"},
		Food:        []string{"Asado", "Empanadas", "Dulce de Leche desserts"},
		Sightseeing: []string{"La Boca (Caminito)", "Puerto Madero", "Palermo Parks"},
	},
	"Moscow": {
		Attractions: []string{"Red Square", "The Kremlin", "St. Basil's Cathedral"},
		Food:        []string{"Borscht", "Pelmeni", "Caviar"},
		Sightseeing: []string{"Tretyakov Gallery", "Gorky Park", "The Bolshoi Theatre"},
	},
	"Athens": {
		Attractions: []string{"Acropolis of Athens", "Parthenon", "Temple of Hephaestus"},
		Food:        []string{"Greek Salad", "Souvlaki", "Baklava"},
		Sightseeing: []string{"Acropolis Museum", "Plaka District", "Syntagma Square"},
	},
	"Cairo": {
		Attractions: []string{"Pyramids of Giza", "Khan El-Khalili", "Islamic Cairo"},
		Food:        []string{"Ful Medames", "Taameya", "Koshari"},
		Sightseeing: []string{"Great Pyramid", "Sphinx", "Egyptian Museum"},
	},
	"Budapest": {
		Attractions: []string{"Budapest Castle", "Margaret Island", "St. Stephen's Basilica"},
		Food:        []string{"Goulash", "Langos", "Paprika"},
		Sightseeing: []string{"Buda Castle", "Chain Bridge", "Dohány Street Synagogue"},
	},
	"Miami": {
		Attractions: []string{"South Beach", "Art Deco Historic District", "Wynwood Walls"},
		Food:        []string{"Cuban Sandwiches", "Key Lime Pie", "Seafood"},
		Sightseeing: []string{"Ocean Drive", "Vizcaya Museum", "Little Havana"},
	},
}
