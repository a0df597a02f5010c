package domain

// FeaturedIDs is the curated best-seller list, in display order
var FeaturedIDs = []string{
	"amity-facial-kit",
	"amity-skin-care",
	"amity-female-perfumes",
	"amity-male-perfumes",
	"avon-imari-set",
	"avon-blemish-clearing-set",
	"avon-black-suede",
	"avon-lipsticks",
	"arthur-ford-perfume-men",
	"arthur-ford-body-lotion",
}

// Default builds the shop's catalog. The dataset is static, so a validation failure
// here is a programming error surfaced at startup.
func Default() (*Catalog, error) {
	return NewCatalog(defaultProducts(), FeaturedIDs)
}

func defaultProducts() []Product {
	return []Product{
		{ID: "amity-after-shave-balm", Name: "Amity After Shave Balm", Brand: BrandAmity, Price: 5, Rating: 4.5, Category: CategorySkincare, Gender: GenderMale, Image: "/images/Amity/Amity After ShaveBalm $5.jpeg"},
		{ID: "amity-bath-salts", Name: "Amity Bath Salts", Brand: BrandAmity, Price: 7, Rating: 4.5, Category: CategoryBodyCare, Gender: GenderUnisex, Image: "/images/Amity/Amity Bath Salts $7.jpeg"},
		{ID: "amity-braiding-spray", Name: "Amity Braiding Spray", Brand: BrandAmity, Price: 6, Rating: 4, Category: CategoryHairCare, Gender: GenderUnisex, Image: "/images/Amity/Amity Braiding spray $6.jpeg"},
		{ID: "amity-facial-kit", Name: "Amity Facial Kit", Brand: BrandAmity, Price: 25, Rating: 5, Category: CategorySkincare, Gender: GenderUnisex, Image: "/images/Amity/Amity Facial Kit $25.jpeg"},
		{ID: "amity-female-perfumes", Name: "Amity Female Perfumes", Brand: BrandAmity, Price: 10, Rating: 4.5, Category: CategoryFragrance, Gender: GenderFemale, Image: "/images/Amity/Amity Female Perfumes $10.jpeg"},
		{ID: "amity-foot-spray", Name: "Amity Foot Spray", Brand: BrandAmity, Price: 5, Rating: 4, Category: CategoryBodyCare, Gender: GenderUnisex, Image: "/images/Amity/Amity FootSpray $5.jpeg"},
		{ID: "amity-hair-scalp-oil", Name: "Amity Hair and Scalp Oil Treatment", Brand: BrandAmity, Price: 6, Rating: 4.5, Category: CategoryHairCare, Gender: GenderUnisex, Image: "/images/Amity/Amity Hair and Scalp oil treatment $6.jpeg"},
		{ID: "amity-hand-body-cream", Name: "Amity Hand & Body Cream", Brand: BrandAmity, Price: 5, Rating: 4.5, Category: CategoryBodyCare, Gender: GenderUnisex, Image: "/images/Amity/Amity Hand & Body Cream $5.jpeg"},
		{ID: "amity-hill-balm", Name: "Amity Hill Balm", Brand: BrandAmity, Price: 8, Rating: 4.5, Category: CategorySkincare, Gender: GenderUnisex, Image: "/images/Amity/Amity Hill Balm $8.jpeg"},
		{ID: "amity-male-perfumes", Name: "Amity Male Perfumes", Brand: BrandAmity, Price: 10, Rating: 4.5, Category: CategoryFragrance, Gender: GenderMale, Image: "/images/Amity/Amity Male Perfumes $10.jpeg"},
		{ID: "amity-shower-gel", Name: "Amity Shower Gel", Brand: BrandAmity, Price: 5, Rating: 4, Category: CategoryBodyCare, Gender: GenderUnisex, Image: "/images/Amity/Amity shower gel $5.jpeg"},
		{ID: "amity-skin-care", Name: "Amity Skin Care", Brand: BrandAmity, Price: 25, Rating: 5, Category: CategorySkincare, Gender: GenderUnisex, Image: "/images/Amity/Amity Skin Care $25.jpeg"},
		{ID: "amity-tumeric-body", Name: "Amity Tumeric Body", Brand: BrandAmity, Price: 6, Rating: 4.5, Category: CategoryBodyCare, Gender: GenderUnisex, Image: "/images/Amity/Amity Tumeric Body $6.jpeg"},
		{ID: "amity-tumeric-body-lotion", Name: "Amity Tumeric Body Lotion", Brand: BrandAmity, Price: 6, Rating: 4.5, Category: CategoryBodyCare, Gender: GenderUnisex, Image: "/images/Amity/Amity Tumeric Body Lotion $6.jpeg"},
		{ID: "amity-tumeric-scrub", Name: "Amity Tumeric Scrub", Brand: BrandAmity, Price: 10, Rating: 4.5, Category: CategoryBodyCare, Gender: GenderUnisex, Image: "/images/Amity/Amity Tumeric Scrub $10.jpeg"},
		{ID: "avon-black-suede", Name: "Avon Black Suede", Brand: BrandAvon, Price: 18, Rating: 4.5, Category: CategoryFragrance, Gender: GenderMale, Image: "/images/Avon/Avon Black Suede $18.jpg"},
		{ID: "avon-blemish-clearing-set", Name: "Avon Blemish Clearing Set", Brand: BrandAvon, Price: 20, Rating: 4.5, Category: CategorySkincare, Gender: GenderUnisex, Image: "/images/Avon/Avon Blemish Clearing Set $20.jpeg"},
		{ID: "avon-body-lotion-720ml", Name: "Avon Body Lotion 720ml", Brand: BrandAvon, Price: 10, Rating: 4.5, Category: CategoryBodyCare, Gender: GenderUnisex, Image: "/images/Avon/Avon Body Lotion 720ml $10.jpeg"},
		{ID: "avon-body-lotion-handcream-12", Name: "Avon Body Lotion and Hand Cream", Brand: BrandAvon, Price: 12, Rating: 4.5, Category: CategoryBodyCare, Gender: GenderUnisex, Image: "/images/Avon/Avon Body Lotion and HandCream $12.jpeg"},
		{ID: "avon-body-lotion-handcream-8", Name: "Avon Body Lotion and Hand Cream", Brand: BrandAvon, Price: 8, Rating: 4.5, Category: CategoryBodyCare, Gender: GenderUnisex, Image: "/images/Avon/Avon Body Lotion and HandCream $8.jpeg"},
		{ID: "avon-body-sprays-her", Name: "Avon Body Sprays For Her", Brand: BrandAvon, Price: 6, Rating: 4, Category: CategoryFragrance, Gender: GenderFemale, Image: "/images/Avon/Avon Body Sprays For Her $6.jpeg"},
		{ID: "avon-body-sprays-him", Name: "Avon Body Sprays For Him", Brand: BrandAvon, Price: 6, Rating: 4, Category: CategoryFragrance, Gender: GenderMale, Image: "/images/Avon/Avon Body Sprays For Him $6.jpeg"},
		{ID: "avon-body-wash", Name: "Avon Body Wash", Brand: BrandAvon, Price: 6, Rating: 4, Category: CategoryBodyCare, Gender: GenderUnisex, Image: "/images/Avon/Avon Body Wash $6.jpeg"},
		{ID: "avon-bubble-bath", Name: "Avon Bubble Bath 500ml", Brand: BrandAvon, Price: 5, Rating: 4, Category: CategoryBodyCare, Gender: GenderUnisex, Image: "/images/Avon/Avon Bubble Bath 500ml $5.jpeg"},
		{ID: "avon-charcoal-soap", Name: "Avon Charcoal Soap", Brand: BrandAvon, Price: 3, Rating: 4, Category: CategoryBodyCare, Gender: GenderUnisex, Image: "/images/Avon/Avon Charcoal Soap $3.jpeg"},
		{ID: "avon-face-cream", Name: "Avon Face Cream", Brand: BrandAvon, Price: 5, Rating: 4.5, Category: CategorySkincare, Gender: GenderUnisex, Image: "/images/Avon/Avon Face Cream $5.jpeg"},
		{ID: "avon-feminine-wash", Name: "Avon Feminine Wash 250ml", Brand: BrandAvon, Price: 6, Rating: 4.5, Category: CategoryBodyCare, Gender: GenderUnisex, Image: "/images/Avon/Avon Feminine Wash 250ml $6.jpg"},
		{ID: "avon-foot-works", Name: "Avon Foot Works", Brand: BrandAvon, Price: 5, Rating: 4, Category: CategoryBodyCare, Gender: GenderUnisex, Image: "/images/Avon/Avon foot works $5 each.jpg"},
		{ID: "avon-hand-cream", Name: "Avon Hand Cream", Brand: BrandAvon, Price: 3, Rating: 4, Category: CategoryHandCare, Gender: GenderUnisex, Image: "/images/Avon/Avon Hand Cream $3.jpeg"},
		{ID: "avon-imari-set", Name: "Avon Imari Set", Brand: BrandAvon, Price: 25, Rating: 5, Category: CategoryFragrance, Gender: GenderFemale, Image: "/images/Avon/Avon Imari set $25.jpeg"},
		{ID: "avon-lip-oils", Name: "Avon Lip Oils", Brand: BrandAvon, Price: 10, Rating: 4.5, Category: CategoryMakeup, Gender: GenderFemale, Image: "/images/Avon/Avon Lip oils $10.jpeg"},
		{ID: "avon-lipsticks", Name: "Avon Lipsticks", Brand: BrandAvon, Price: 10, Rating: 4.5, Category: CategoryMakeup, Gender: GenderFemale, Image: "/images/Avon/Avon Lipsticks $10.jpg"},
		{ID: "avon-onduty-rollon", Name: "Avon On Duty Roll On", Brand: BrandAvon, Price: 3, Rating: 4, Category: CategoryDeodorant, Gender: GenderUnisex, Image: "/images/Avon/Avon Onduty RollOn $3.jpg"},
		{ID: "avon-scented-body-lotion", Name: "Avon Scented Body Lotion", Brand: BrandAvon, Price: 6, Rating: 4.5, Category: CategoryBodyCare, Gender: GenderUnisex, Image: "/images/Avon/Avon Scented Body Lotion $6.jpg"},
		{ID: "arthur-ford-body-lotion", Name: "Arthur Ford Body Lotion", Brand: BrandArthurFord, Price: 15, Rating: 4.5, Category: CategoryBodyCare, Gender: GenderUnisex, Image: "/images/Arthur Ford/Arthur Ford Body Lotion.jfif"},
		{ID: "arthur-ford-perfume-men", Name: "Arthur Ford Perfume for Men", Brand: BrandArthurFord, Price: 25, Rating: 5, Category: CategoryFragrance, Gender: GenderMale, Image: "/images/Arthur Ford/Arthur Ford perfume for men.jpg"},
	}
}
