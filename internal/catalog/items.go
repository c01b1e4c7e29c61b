package catalog

// Fixed demo inventory. Barcodes are unique within each list.

var generalItems = []Item{
	item("images/catalog/brownies.png", "Ghirardelli - Dark Chocolate Premium Brownie Mix", "4.99", "20 oz", "0000000041121"), // 0
	item("images/catalog/cake.png", "Birthday Cake", "12.99", "32 oz", "0000000041122"),                                       // 1
	item("images/catalog/chips.png", "Tostitos - Original", "3.99", "12 oz", "0000000041123"),                                 // 2
	item("images/catalog/dog_food.png", "Purina ONE Dry Dog Food - Lamb & Rice", "29.99", "15 lb", "0000000041124"),           // 3
	item("images/catalog/eggo.png", "Eggo Waffles", "4.99", "12.3 oz", "0000000041125"),                                       // 4
	item("images/catalog/granola.png", "Catalina Crunch Cereal - Cinnamon Toast", "5.49", "24 oz", "0000000041126"),           // 5
	item("images/catalog/ice_cream.png", "Häagen-Dazs Ice Cream - Chocolate", "4.99", "14 oz", "0000000041127"),               // 6
	item("images/catalog/milk.png", "Whole Milk", "4.29", "1 gal", "0000000041128"),                                           // 7
	item("images/catalog/pasta.png", "Banza Gluten-Free Chickpea Penne Pasta", "6.49", "8 oz", "0000000041129"),               // 8
	item("images/catalog/peanut_butter.png", "Jif - Extra Crunchy Peanut Butter", "5.99", "16 oz", "0000000041130"),           // 9
	item("images/catalog/sushi.png", "Fresh Sushi Roll", "9.99", "8 oz", "0000000041131"),                                     // 10
	item("images/catalog/toilet_paper.png", "Charmin - Ultra Soft Toilet Paper", "14.99", "12 rolls", "0000000041132"),        // 11
	item("images/catalog/tomato_sauce.png", "Hunt's Tomato Sauce", "2.99", "24 oz", "0000000041133"),                          // 12
	item("images/catalog/water.png", "Poland Spring Water", "7.99", "24 pack", "0000000041134"),                               // 13
	item("images/catalog/paper_towels.png", "Bounty Paper Towels - Select-A-Size", "19.99", "8 rolls", "0000000041135"),       // 14
}

var produceItems = []Item{
	item("images/produce/apples_1.png", "Red Delicious Apples", "2.99", "1.5 lb", "0000000042101"),
	item("images/produce/apples_2.png", "Gala Apples", "3.49", "2 lb", "0000000042102"),
	item("images/produce/apples_3.png", "Granny Smith Apples", "3.29", "1.8 lb", "0000000042103"),
	item("images/produce/avocado.png", "Fresh Avocado", "1.99", "0.4 lb", "0000000042104"),
	item("images/produce/banana.png", "Yellow Bananas", "0.99", "1 lb", "0000000042105"),
	item("images/produce/carrots.png", "Organic Carrots", "2.49", "2 lb", "0000000042106"),
	item("images/produce/cucumber.png", "English Cucumber", "1.49", "0.8 lb", "0000000042107"),
	item("images/produce/durian.png", "Durian", "12.99", "3 lb", "0000000042108"),
	item("images/produce/lemon.png", "Fresh Lemon", "0.79", "0.3 lb", "0000000042109"),
	item("images/produce/onion_1.png", "Yellow Onion", "1.29", "0.5 lb", "0000000042110"),
	item("images/produce/onion_2.png", "Red Onion", "1.49", "0.6 lb", "0000000042111"),
	item("images/produce/onion_3.png", "Sweet Onion", "1.79", "0.7 lb", "0000000042112"),
	item("images/produce/orange_1.png", "Valencia Orange", "1.99", "0.6 lb", "0000000042113"),
	item("images/produce/orange_2.png", "Mandarin Orange", "2.49", "0.5 lb", "0000000042114"),
	item("images/produce/pear.png", "Bartlett Pear", "2.29", "0.7 lb", "0000000042115"),
	item("images/produce/potato.png", "Russet Potato", "0.89", "0.8 lb", "0000000042116"),
	item("images/produce/squash.png", "Butternut Squash", "2.99", "1.2 lb", "0000000042117"),
	item("images/produce/sweet_potato.png", "Sweet Potato", "1.99", "1 lb", "0000000042118"),
	item("images/produce/watermelon.png", "Watermelon", "6.99", "8 lb", "0000000042119"),
	item("images/produce/mac_cheese.png", "Mac and Cheese", "5.99", "1.5 lb", "0000000042120"),
}
