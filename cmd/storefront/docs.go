package main

// @title Adiel Beauty Storefront API
// @version 1.0
// @description Storefront for the Adiel Beauty shop: catalog browsing, cart and wishlist, WhatsApp and email order hand-off, accounts, reviews and contact.

// @contact.name Adiel Beauty
// @contact.email paulineadiel@gmail.com

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Catalog
// @tag.description Product listing and selection commands

// @tag.name Cart
// @tag.description Session cart

// @tag.name Wishlist
// @tag.description Session wishlist

// @tag.name Checkout
// @tag.description Order hand-off to the vendor

// @tag.name Auth
// @tag.description Accounts and sign-in

// @tag.name Reviews
// @tag.description Ratings and comments

// @tag.name Contact
// @tag.description Contact form and newsletter
