package station

// lines is the hand-curated U-Bahn directory. Stations run from the first
// to the last terminus; RBLs[0] serves trains towards the last station and
// RBLs[1] trains towards the first.
var lines = []Line{
	{
		ID:    "u1",
		Name:  "U1",
		Color: "#e20613",
		Stations: []Station{
			{Name: "Oberlaa", RBLs: [2]int{4101, 4128}},
			{Name: "Neulaa", RBLs: [2]int{4101, 4132}},
			{Name: "Alaudagasse", RBLs: [2]int{4101, 4130}},
			{Name: "Altes Landgut", RBLs: [2]int{4101, 4130}},
			{Name: "Troststraße", RBLs: [2]int{4101, 4129}},
			{Name: "Reumannplatz", RBLs: [2]int{4101, 4128}},
			{Name: "Keplerplatz", RBLs: [2]int{4103, 4124}},
			{Name: "Südtiroler Platz", RBLs: [2]int{4105, 4124}},
			{Name: "Taubstummengasse", RBLs: [2]int{4107, 4122}},
			{Name: "Karlsplatz", RBLs: [2]int{4109, 4120}},
			{Name: "Stephansplatz", RBLs: [2]int{4111, 4118}},
			{Name: "Schwedenplatz", RBLs: [2]int{4113, 4116}},
			{Name: "Nestroyplatz", RBLs: [2]int{4115, 4114}},
			{Name: "Praterstern", RBLs: [2]int{4117, 4112}},
			{Name: "Vorgartenstraße", RBLs: [2]int{4119, 4110}},
			{Name: "Donauinsel", RBLs: [2]int{4121, 4108}},
			{Name: "Kaisermühlen-VIC", RBLs: [2]int{4123, 4106}},
			{Name: "Alte Donau", RBLs: [2]int{4125, 4104}},
			{Name: "Kagran", RBLs: [2]int{4127, 4102}},
			{Name: "Kagraner Platz", RBLs: [2]int{4127, 4102}},
			{Name: "Rennbahnweg", RBLs: [2]int{4127, 4102}},
			{Name: "Aderklaaer Straße", RBLs: [2]int{4127, 4102}},
			{Name: "Großfeldsiedlung", RBLs: [2]int{4127, 4102}},
			{Name: "Leopoldau", RBLs: [2]int{4127, 4102}},
		},
	},
	{
		ID:    "u2",
		Name:  "U2",
		Color: "#a762a4",
		Stations: []Station{
			{Name: "Karlsplatz", RBLs: [2]int{4263, 4257}},
			{Name: "Museumsquartier", RBLs: [2]int{4263, 4257}},
			{Name: "Volkstheater", RBLs: [2]int{4263, 4257}},
			{Name: "Rathaus", RBLs: [2]int{4263, 4257}},
			{Name: "Schottentor", RBLs: [2]int{4263, 4257}},
			{Name: "Schottenring", RBLs: [2]int{4263, 4257}},
			{Name: "Taborstraße", RBLs: [2]int{4262, 4257}},
			{Name: "Praterstern", RBLs: [2]int{4263, 4257}},
			{Name: "Messe", RBLs: [2]int{4263, 4259}},
			{Name: "Krieau", RBLs: [2]int{4263, 4259}},
			{Name: "Stadion", RBLs: [2]int{4263, 4257}},
			{Name: "Donaumarina", RBLs: [2]int{4267, 4255}},
			{Name: "Donaustadtbrücke", RBLs: [2]int{4267, 4255}},
			{Name: "Stadlau", RBLs: [2]int{4271, 4254}},
			{Name: "Hardeggasse", RBLs: [2]int{4271, 4253}},
			{Name: "Donauspital", RBLs: [2]int{4271, 4252}},
			{Name: "Aspernstraße", RBLs: [2]int{4271, 4251}},
			{Name: "Lina-Loos-Platz", RBLs: [2]int{4271, 4251}},
			{Name: "Hausfeldstraße", RBLs: [2]int{4271, 4251}},
			{Name: "Aspern Nord", RBLs: [2]int{4271, 4251}},
			{Name: "Seestadt", RBLs: [2]int{4271, 4251}},
		},
	},
	{
		ID:    "u3",
		Name:  "U3",
		Color: "#ef7c00",
		Stations: []Station{
			{Name: "Ottakring", RBLs: [2]int{4302, 4301}},
			{Name: "Kendlerstraße", RBLs: [2]int{4304, 4303}},
			{Name: "Hütteldorfer Straße", RBLs: [2]int{4306, 4305}},
			{Name: "Johnstraße", RBLs: [2]int{4308, 4307}},
			{Name: "Schweglerstraße", RBLs: [2]int{4310, 4309}},
			{Name: "Westbahnhof", RBLs: [2]int{4312, 4311}},
			{Name: "Zieglergasse", RBLs: [2]int{4314, 4313}},
			{Name: "Neubaugasse", RBLs: [2]int{4316, 4315}},
			{Name: "Volkstheater", RBLs: [2]int{4318, 4317}},
			{Name: "Herrengasse", RBLs: [2]int{4320, 4319}},
			{Name: "Stephansplatz", RBLs: [2]int{4322, 4321}},
			{Name: "Stubentor", RBLs: [2]int{4324, 4323}},
			{Name: "Landstraße", RBLs: [2]int{4326, 4325}},
			{Name: "Rochusgasse", RBLs: [2]int{4328, 4327}},
			{Name: "Kardinal-Nagl-Platz", RBLs: [2]int{4330, 4329}},
			{Name: "Schlachthausgasse", RBLs: [2]int{4332, 4331}},
			{Name: "Erdberg", RBLs: [2]int{4334, 4333}},
			{Name: "Gasometer", RBLs: [2]int{4336, 4335}},
			{Name: "Zippererstraße", RBLs: [2]int{4338, 4337}},
			{Name: "Enkplatz", RBLs: [2]int{4340, 4339}},
			{Name: "Simmering", RBLs: [2]int{4342, 4341}},
		},
	},
	{
		ID:    "u4",
		Name:  "U4",
		Color: "#319f49",
		Stations: []Station{
			{Name: "Hütteldorf", RBLs: [2]int{4401, 4430}},
			{Name: "Ober St. Veit", RBLs: [2]int{4403, 4430}},
			{Name: "Unter St. Veit", RBLs: [2]int{4405, 4430}},
			{Name: "Braunschweiggasse", RBLs: [2]int{4407, 4430}},
			{Name: "Hietzing", RBLs: [2]int{4409, 4430}},
			{Name: "Schönbrunn", RBLs: [2]int{4411, 4430}},
			{Name: "Meidling Hauptstraße", RBLs: [2]int{4413, 4422}},
			{Name: "Längenfeldgasse", RBLs: [2]int{4415, 4422}},
			{Name: "Margaretengürtel", RBLs: [2]int{4415, 4422}},
			{Name: "Pilgramgasse", RBLs: [2]int{4419, 4422}},
			{Name: "Kettenbrückengasse", RBLs: [2]int{4419, 4416}},
			{Name: "Karlsplatz", RBLs: [2]int{4421, 4416}},
			{Name: "Stadtpark", RBLs: [2]int{4423, 4412}},
			{Name: "Landstraße", RBLs: [2]int{4423, 4412}},
			{Name: "Schwedenplatz", RBLs: [2]int{4427, 4410}},
			{Name: "Schottenring", RBLs: [2]int{4429, 4408}},
			{Name: "Roßauer Lände", RBLs: [2]int{4429, 4406}},
			{Name: "Friedensbrücke", RBLs: [2]int{4429, 4404}},
			{Name: "Spittelau", RBLs: [2]int{4402, 4404}},
			{Name: "Heiligenstadt", RBLs: [2]int{4402, 4401}},
		},
	},
	{
		ID:    "u6",
		Name:  "U6",
		Color: "#9b6e2e",
		Stations: []Station{
			{Name: "Siebenhirten", RBLs: [2]int{4636, 4646}},
			{Name: "Perfektastraße", RBLs: [2]int{4636, 4646}},
			{Name: "Erlaaer Straße", RBLs: [2]int{4636, 4632}},
			{Name: "Alterlaa", RBLs: [2]int{4638, 4646}},
			{Name: "Am Schöpfwerk", RBLs: [2]int{4639, 4646}},
			{Name: "Tscherttegasse", RBLs: [2]int{4640, 4646}},
			{Name: "Bahnhof Meidling", RBLs: [2]int{4640, 4646}},
			{Name: "Niederhofstraße", RBLs: [2]int{4640, 4646}},
			{Name: "Längenfeldgasse", RBLs: [2]int{4640, 4651}},
			{Name: "Gumpendorfer Straße", RBLs: [2]int{4624, 4651}},
			{Name: "Westbahnhof", RBLs: [2]int{4624, 4651}},
			{Name: "Burggasse - Stadthalle", RBLs: [2]int{4624, 4651}},
			{Name: "Thaliastraße", RBLs: [2]int{4624, 4651}},
			{Name: "Josefstädter Straße", RBLs: [2]int{4624, 4651}},
			{Name: "Alser Straße", RBLs: [2]int{4624, 4651}},
			{Name: "Michelbeuern - AKH", RBLs: [2]int{4624, 4651}},
			{Name: "Währinger Straße - Volksoper", RBLs: [2]int{4625, 4651}},
			{Name: "Nußdorfer Straße", RBLs: [2]int{4627, 4651}},
			{Name: "Spittelau", RBLs: [2]int{4627, 4651}},
			{Name: "Jägerstraße", RBLs: [2]int{4641, 4650}},
			{Name: "Dresdner Straße", RBLs: [2]int{4642, 4649}},
			{Name: "Handelskai", RBLs: [2]int{4643, 4648}},
			{Name: "Neue Donau", RBLs: [2]int{4644, 4647}},
			{Name: "Floridsdorf", RBLs: [2]int{4644, 4646}},
		},
	},
}
