package domain

// factoryPrograms is the immutable default catalog. It is the seeding source
// and the read fallback when the store is unreachable; it is never mutated at
// runtime. One canonical set serves all three portals, with per-portal ids
// derived through the portal table.
var factoryPrograms = []Program{
	{
		ID:                   "1",
		Name:                 "Explore London: Summer",
		Location:             "King's College London",
		City:                 "London",
		Country:              "İngiltere",
		AgeRange:             "12-17 Yaş",
		Dates:                "2 Temmuz, 9 Temmuz, 16 Temmuz, 23 Temmuz, 30 Temmuz / 6 Ağustos",
		Duration:             "1-2 Hafta",
		AccommodationType:    AccommodationResidence,
		AccommodationDetails: "Great Dover Street veya Moonraker Point (Zone 1, Tek kişilik en-suite)",
		IncludedServices: []string{
			"Haftada 15 saat Genel İngilizce",
			"Central London konaklama",
			"Tam pansiyon yemek planı",
			"Travelcard (London seyahat kartı)",
			"Günlük geziler ve akşam aktiviteleri",
			"London içi bir tam gün gezi",
			"Kurs sonu sertifikası",
		},
		YoungLearnersGoals: []string{
			"İngiliz kültürünü daha derinden anlamak",
			"Küçük gruplar halinde projelerde çalışmak",
			"London'ı keşfetmek ve ünlü yerleri ziyaret etmek",
			"İngilizce dil becerilerini geliştirmek",
			"Daha bağımsız bir öğrenci olmak",
			"Yaşam becerilerini geliştirmek",
			"Dünyanın dört bir yanından arkadaş edinmek",
		},
		Description: "London'ı keşfetmek, Genç Öğrencilerin (Young Learners) yeni bir kültürü öğrenirken İngilizce dil becerilerini geliştirmeleri için heyecan verici bir yoldur. Bu yaz kampı programı, İngilizce derslerini ünlü turistik yerlere ve lokasyonlara yapılan günlük gezilerle birleştirir. Öğrenciler dünyanın dört bir yanından gelen öğrencilerle tanışacak, İngilizcelerini gerçek hayat durumlarında pratik yaparak becerilerini hızlı, doğru ve güvenle geliştireceklerdir.",
		HeroImage:   "https://picsum.photos/800/400?random=1",
		GalleryImages: []string{
			"https://picsum.photos/400/300?random=101",
			"https://picsum.photos/400/300?random=102",
			"https://picsum.photos/400/300?random=103",
			"https://picsum.photos/400/300?random=104",
		},
		TimetableImages: []string{},
		BasePriceNote:   "Fiyat Teklifi Alınız",
	},
	{
		ID:                   "2",
		Name:                 "Explore England: Bedford School",
		Location:             "Bedford School",
		City:                 "Bedford",
		Country:              "İngiltere",
		AgeRange:             "12-17 Yaş",
		Dates:                "7 Temmuz, 14 Temmuz, 21 Temmuz, 28 Temmuz",
		Duration:             "1-2 Hafta",
		AccommodationType:    AccommodationCampus,
		AccommodationDetails: "Yatılı okul evlerinde yüksek kaliteli konaklama",
		IncludedServices: []string{
			"Yüksek kaliteli yatılı konaklama",
			"Tam pansiyon yemek",
			"Online seviye belirleme sınavı",
			"Haftada 15 saat Genel İngilizce",
			"Akşamları eğlence aktiviteleri",
			"Bir tam gün gezi",
			"Kurs sonu sertifikası ve mezuniyet",
		},
		YoungLearnersGoals: []string{
			"İngilizce Dil Becerilerini Geliştirmek",
			"İngiliz kültürünü daha derinden anlamak",
			"Küçük gruplar halinde projelerde çalışmak",
			"Eğlenceli sosyal aktivitelere katılmak",
			"Kapsamlı kampüs imkanlarından yararlanmak",
			"Yerel bir şehri ve turistik yerlerini keşfetmek",
			"Daha bağımsız bir öğrenci olmak",
		},
		Description: "1552 yılında kurulan Bedford School, İngiltere'nin en iyi yatılı okullarından biridir ve Fortune'un Dünya Çapında Lider Yatılı Okulları listesinde ilk 6'da yer almaktadır. 40 dönümlük bir arazi üzerinde yer alan bu güzel ve tarihi bina, spor, yaratıcılık ve öğrenim için mükemmel tesislere sahiptir. Oxford, Cambridge ve London arasında mükemmel bir konuma sahip olan okul, Güney Doğu İngiltere Yaz Kampımız için ideal bir yerdir.",
		HeroImage:   "https://picsum.photos/800/400?random=2",
		GalleryImages: []string{
			"https://picsum.photos/400/300?random=201",
			"https://picsum.photos/400/300?random=202",
			"https://picsum.photos/400/300?random=203",
			"https://picsum.photos/400/300?random=204",
		},
		TimetableImages: []string{},
		BasePriceNote:   "Fiyat Teklifi Alınız",
	},
	{
		ID:                   "3",
		Name:                 "YL City Explorer, Manchester",
		Location:             "BSC Manchester",
		City:                 "Manchester",
		Country:              "İngiltere",
		AgeRange:             "12-17 Yaş",
		Dates:                "5 Temmuz & 12 Temmuz 2026",
		Duration:             "Min 1 Hafta",
		AccommodationType:    AccommodationResidence,
		AccommodationDetails: "Brook Hall - Tek kişilik en-suite odalar",
		IncludedServices: []string{
			"Yüksek kaliteli yurt konaklaması",
			"Tam pansiyon yemek",
			"Haftada 15 saat İngilizce eğitimi",
			"Yerel turistik yerlere geziler",
			"Akşamları eğlence aktiviteleri",
			"Kurs sonu sertifikası",
			"Mezuniyet töreni",
		},
		YoungLearnersGoals: []string{
			"İngilizce Dil becerilerini geliştirmek",
			"Yaratıcılık, problem çözme ve özgüven geliştirmek",
			"İngiliz kültürünü daha derinden anlamak",
			"Küçük gruplarda proje tabanlı görevlere katılmak",
			"Takım çalışması ve iletişimi güçlendirmek",
			"Yerel turistik yerleri keşfetmek",
			"Bolca eğlenmek ve uluslararası arkadaşlar edinmek",
		},
		Description: "City Explorer Manchester, İngiltere'nin Kuzey Batısındaki Manchester'ın kalbinde yer alan BSC okulumuzda sunulan, 12-17 yaş arası Genç Öğrenciler için heyecan verici, aktivite dolu bir yaz programıdır. Bu program, dinamik, etkileşimli dersler ve ilham verici proje tabanlı öğrenim yoluyla öğrencilerin İngilizce dil becerilerini güçlendirmek için tasarlanmıştır. Dil gelişiminin yanı sıra, öğrenciler özgüven, bağımsızlık ve iletişim, işbirliği, eleştirel düşünme ve yaratıcılık gibi temel yaşam becerilerini inşa edeceklerdir.",
		HeroImage:   "https://picsum.photos/800/400?random=3",
		GalleryImages: []string{
			"https://picsum.photos/400/300?random=301",
			"https://picsum.photos/400/300?random=302",
			"https://picsum.photos/400/300?random=303",
			"https://picsum.photos/400/300?random=304",
		},
		TimetableImages: []string{},
		BasePriceNote:   "£995 / Kişi Başı",
	},
	{
		ID:                   "4",
		Name:                 "Future Leaders",
		Location:             "Bedford School",
		City:                 "Bedford",
		Country:              "İngiltere",
		AgeRange:             "12-17 Yaş",
		Dates:                "7 Temmuz, 14 Temmuz, 21 Temmuz, 28 Temmuz",
		Duration:             "2 Hafta",
		AccommodationType:    AccommodationCampus,
		AccommodationDetails: "Yatılı okul konaklaması",
		IncludedServices: []string{
			"Yüksek kaliteli konaklama",
			"Tam pansiyon yemek",
			"Bir tam gün gezi",
			"Haftada 20 saat İçerik ve Dil Entegreli Eğitim",
			"Akşam aktiviteleri",
			"Kurs sonu sertifikası",
			"Mezuniyet",
		},
		YoungLearnersGoals: []string{
			"Liderlik ve takım çalışması becerilerini güçlendirmek",
			"Ürün geliştirme ve lansman sürecini öğrenmek",
			"Yaratıcılık ve problem çözme becerilerini geliştirmek",
			"Topluluk önünde konuşma ve sunum yapma özgüveni kazanmak",
			"Kişisel ve akademik gelişim için temel yaşam becerilerini artırmak",
			"İş dünyasının nasıl işlediğine dair daha derin bir anlayış geliştirmek",
			"Bağımsız, kendi kendini motive eden öğrenciler olarak büyümek",
		},
		Description: "Future Leaders, 12-17 yaş arası öğrenciler için tasarlanmış, gerçek dünya liderlik ve iletişim becerilerini geliştirmeyi amaçlayan heyecan verici bir kurstur. Bütçeleme, pazarlama, finans ve proje planlama konularındaki uygulamalı atölye çalışmaları aracılığıyla öğrenciler, yaratıcılık ve takım çalışmasını güçlendirirken ürünlerin nasıl geliştirilip piyasaya sürüleceğini de öğrenirler. Program, Oxford, Cambridge ve London arasında yer alan 40 dönümlük güzel bir arazide kurulu prestijli Bedford School'da gerçekleşmektedir.",
		HeroImage:   "https://picsum.photos/800/400?random=4",
		GalleryImages: []string{
			"https://picsum.photos/400/300?random=401",
			"https://picsum.photos/400/300?random=402",
			"https://picsum.photos/400/300?random=403",
			"https://picsum.photos/400/300?random=404",
		},
		TimetableImages: []string{},
		BasePriceNote:   "Fiyat Teklifi Alınız",
	},
	{
		ID:                   "5",
		Name:                 "Explore England: Wellington School",
		Location:             "Wellington School",
		City:                 "Wellington (Somerset)",
		Country:              "İngiltere",
		AgeRange:             "10-17 Yaş",
		Dates:                "7 Temmuz, 14 Temmuz, 21 Temmuz, 28 Temmuz, 4 Ağustos",
		Duration:             "1-2 Hafta",
		AccommodationType:    AccommodationCampus,
		AccommodationDetails: "Yatılı evlerde yüksek kaliteli konaklama",
		IncludedServices: []string{
			"Yatılı evlerde yüksek kaliteli konaklama",
			"Tam pansiyon yemek",
			"Online seviye belirleme sınavı",
			"Haftada 15 saat Genel İngilizce dersi",
			"Akşam aktiviteleri",
			"Bir tam gün gezi",
			"Dil seviyeli kurs sonu sertifikası",
			"Mezuniyet",
		},
		YoungLearnersGoals: []string{
			"İngilizce Dil Becerilerini Geliştirmek",
			"İngiliz kültürünü daha derinden anlamak",
			"Küçük gruplar halinde projelerde çalışmak",
			"Eğlenceli sosyal aktivitelere katılmak",
			"Kapsamlı kampüs imkanlarından yararlanmak",
			"Yerel bir şehri ve turistik yerlerini keşfetmek",
			"Daha bağımsız bir öğrenci olmak",
			"Yaşam becerilerini geliştirmek",
		},
		Description: "Güzel Güney Batı İngiltere'nin kalbinde yer alan Wellington School, unutulmaz bir yaz kampı deneyimi için mükemmel bir ortam sunmaktadır. 1837 yılında kurulan bu prestijli bağımsız okul, Olağanüstü Doğal Güzellik Alanı olan Blackdown Tepeleri yakınındaki 35 dönümlük çarpıcı kampüsünde zengin bir tarihi modern tesislerle harmanlamaktadır. Öğrenciler spor salonu, yüzme havuzu, tenis kortları ve geniş oyun alanları dahil olmak üzere mükemmel spor tesislerine erişimin keyfini çıkarır.",
		HeroImage:   "https://picsum.photos/800/400?random=5",
		GalleryImages: []string{
			"https://picsum.photos/400/300?random=501",
			"https://picsum.photos/400/300?random=502",
			"https://picsum.photos/400/300?random=503",
			"https://picsum.photos/400/300?random=504",
		},
		TimetableImages: []string{},
		BasePriceNote:   "Fiyat Teklifi Alınız",
	},
	{
		ID:                   "6",
		Name:                 "Boarding Immersion Programme - Wellington School",
		Location:             "Wellington School",
		City:                 "Wellington (Somerset)",
		Country:              "İngiltere",
		AgeRange:             "10-17 Yaş",
		Dates:                "Bahar (5 Ocak - 1 Nisan) veya Güz (7 Eylül - 11 Aralık) Dönemleri",
		Duration:             "1 Haftadan 2 Döneme Kadar",
		AccommodationType:    AccommodationCampus,
		AccommodationDetails: "Güvenli yatılı evlerde tam pansiyon",
		IncludedServices: []string{
			"30'a yakın okul sonrası kulüp ve aktivite",
			"Tam pansiyon konaklama",
			"Akşam yemeği ve etüt saatleri",
			"Spor salonu aktiviteleri",
			"Wellington School Şapeli'nde mezuniyet",
			"Uzman öğretmenlerle eğitim",
		},
		YoungLearnersGoals: []string{
			"Dost canlısı ve canlı bir toplulukta yaşamı deneyimlemek",
			"Mümkün olduğunca İngiliz öğrencilerle birlikte çalışmak",
			"Küçük, karma milliyetli gruplarda her zaman İngilizce desteği almak",
			"Uzman öğretmenlerle küçük sınıflarda öğrenim görmek",
			"Wellington School Şapeli'nde bir mezuniyete katılmak",
		},
		Description: "Uluslararası Öğrenciler için Kısa Süreli Yatılı Okul Deneyimi. İngiliz yatılı okul hayatının gerçekten nasıl olduğunu hiç merak ettiniz mi? 10-17 yaş arası uluslararası öğrenciler, önde gelen bir Birleşik Krallık bağımsız yatılı okulunda günlük akademik ve ders dışı yaşamı deneyimleyerek, İngiliz öğrencilerle birlikte yaşayıp Wellington School'un canlı yatılı topluluğunun bir parçası olma fırsatına sahiptir. Bu, uzun vadeli bir seçim yapmadan önce okulu tanımak isteyen aileler için mükemmeldir.",
		HeroImage:   "https://picsum.photos/800/400?random=6",
		GalleryImages: []string{
			"https://picsum.photos/400/300?random=601",
			"https://picsum.photos/400/300?random=602",
			"https://picsum.photos/400/300?random=603",
			"https://picsum.photos/400/300?random=604",
		},
		TimetableImages: []string{},
		BasePriceNote:   "Fiyat Teklifi Alınız",
	},
	{
		ID:                   "7",
		Name:                 "Explore Malta",
		Location:             "Malta",
		City:                 "Malta",
		Country:              "Malta",
		AgeRange:             "12-17 Yaş",
		Dates:                "29 Haziran - 3 Ağustos (Haftalık başlangıçlar)",
		Duration:             "1-2 Hafta",
		AccommodationType:    AccommodationResidence,
		AccommodationDetails: "Yüksek kaliteli konaklama",
		IncludedServices: []string{
			"Yüksek kaliteli konaklama",
			"Tam pansiyon yemek",
			"Online seviye belirleme sınavı",
			"Haftada 15 saat Genel İngilizce",
			"Ünlü yerlere günlük geziler",
			"Akşamları eğlence aktiviteleri",
			"Kurs sonu sertifikası",
			"FELTOM plaj veya havuz partisi",
		},
		YoungLearnersGoals: []string{
			"Yerel kültürü daha derinden anlamak",
			"Küçük gruplar halinde projelerde çalışmak",
			"Malta'yı keşfetmek ve ünlü yerleri ziyaret etmek",
			"İngilizce dil becerilerini geliştirmek",
			"Daha bağımsız bir öğrenci olmak",
			"Yaşam becerilerini geliştirmek",
			"Dünyanın dört bir yanından arkadaş edinmek",
		},
		Description: "Malta'yı keşfetmek, öğrencilerin İngilizce dil becerilerini geliştirirken yeni bir kültür hakkında bilgi edinmeleri için heyecan verici bir yoldur. Malta, İngilizcenin resmi dil olduğu ve nüfusun çoğunluğu tarafından konuşulduğu tek Akdeniz ülkesidir. Bu yaz kampı programında Genç Öğrenciler, İngilizce derslerinin yanı sıra ünlü turistik yerlere ve güzel lokasyonlara günlük geziler yapacaklardır.",
		HeroImage:   "https://picsum.photos/800/400?random=7",
		GalleryImages: []string{
			"https://picsum.photos/400/300?random=701",
			"https://picsum.photos/400/300?random=702",
			"https://picsum.photos/400/300?random=703",
			"https://picsum.photos/400/300?random=704",
		},
		TimetableImages: []string{},
		BasePriceNote:   "Fiyat Teklifi Alınız",
	},
}

// FactoryPrograms returns deep copies of the default catalog for a portal,
// with portal-derived ids. Mutating the result never touches the seed data.
func FactoryPrograms(portal Portal) []Program {
	out := make([]Program, 0, len(factoryPrograms))
	for _, p := range factoryPrograms {
		c := p.Clone()
		c.ID = portal.idPrefix() + p.ID
		out = append(out, c)
	}
	return out
}

// FactoryNames returns the factory catalog's program names in seed order.
// Names are the reconciliation key and are identical across portals.
func FactoryNames() []string {
	names := make([]string, 0, len(factoryPrograms))
	for _, p := range factoryPrograms {
		names = append(names, p.Name)
	}
	return names
}
