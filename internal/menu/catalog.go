package menu

import "comanda-system/internal/domain"

// Catalog returns the canonical menu. IDs are assigned by the store at
// insert time; this slice is the single source for both seeding paths.
func Catalog() []domain.MenuItem {
	return []domain.MenuItem{
		// Hambúrgueres
		{Name: "Hambúrguer Clássico", Price: 25.90, Category: "Hambúrgueres", Glyph: "🍔", Description: "Hambúrguer suculento com queijo, alface e tomate"},
		{Name: "Hambúrguer Bacon", Price: 29.90, Category: "Hambúrgueres", Glyph: "🍔", Description: "Hambúrguer com bacon crocante e queijo cheddar"},
		{Name: "Hambúrguer Duplo", Price: 35.90, Category: "Hambúrgueres", Glyph: "🍔", Description: "Dois hambúrgueres com queijo, alface e molho especial"},
		{Name: "Hambúrguer Vegetariano", Price: 27.90, Category: "Hambúrgueres", Glyph: "🥬", Description: "Hambúrguer de grão-de-bico com vegetais frescos"},
		{Name: "Hambúrguer BBQ", Price: 32.90, Category: "Hambúrgueres", Glyph: "🍔", Description: "Hambúrguer com molho barbecue, cebola caramelizada e queijo"},
		{Name: "Hambúrguer Picante", Price: 28.90, Category: "Hambúrgueres", Glyph: "🌶️", Description: "Hambúrguer com pimenta jalapeño, queijo pepper jack e molho picante"},

		// Pizzas
		{Name: "Pizza Margherita", Price: 35.90, Category: "Pizzas", Glyph: "🍕", Description: "Pizza tradicional com molho de tomate, mussarela e manjericão"},
		{Name: "Pizza Pepperoni", Price: 39.90, Category: "Pizzas", Glyph: "🍕", Description: "Pizza com pepperoni e queijo mussarela"},
		{Name: "Pizza Quatro Queijos", Price: 42.90, Category: "Pizzas", Glyph: "🍕", Description: "Pizza com mussarela, gorgonzola, parmesão e provolone"},
		{Name: "Pizza Portuguesa", Price: 44.90, Category: "Pizzas", Glyph: "🍕", Description: "Pizza com presunto, ovos, cebola, azeitona e ervilha"},
		{Name: "Pizza Calabresa", Price: 38.90, Category: "Pizzas", Glyph: "🍕", Description: "Pizza com calabresa, cebola e azeitona"},
		{Name: "Pizza Frango com Catupiry", Price: 41.90, Category: "Pizzas", Glyph: "🍕", Description: "Pizza com frango desfiado e catupiry cremoso"},

		// Pratos Principais
		{Name: "Filé à Parmegiana", Price: 48.90, Category: "Pratos Principais", Glyph: "🥩", Description: "Filé empanado com molho de tomate e queijo derretido"},
		{Name: "Frango Grelhado", Price: 32.90, Category: "Pratos Principais", Glyph: "🍗", Description: "Peito de frango grelhado com temperos especiais"},
		{Name: "Salmão Grelhado", Price: 55.90, Category: "Pratos Principais", Glyph: "🐟", Description: "Salmão fresco grelhado com ervas finas"},
		{Name: "Lasanha Bolonhesa", Price: 42.90, Category: "Pratos Principais", Glyph: "🍝", Description: "Lasanha tradicional com molho bolonhesa e queijo gratinado"},
		{Name: "Risotto de Camarão", Price: 52.90, Category: "Pratos Principais", Glyph: "🍤", Description: "Risotto cremoso com camarões frescos e ervas"},
		{Name: "Picanha Grelhada", Price: 58.90, Category: "Pratos Principais", Glyph: "🥩", Description: "Picanha suculenta grelhada no ponto, acompanha farofa"},

		// Acompanhamentos
		{Name: "Batata Frita", Price: 12.90, Category: "Acompanhamentos", Glyph: "🍟", Description: "Batatas fritas crocantes e douradas"},
		{Name: "Onion Rings", Price: 15.90, Category: "Acompanhamentos", Glyph: "🧅", Description: "Anéis de cebola empanados e fritos"},
		{Name: "Salada Caesar", Price: 18.90, Category: "Acompanhamentos", Glyph: "🥗", Description: "Alface romana, croutons, parmesão e molho caesar"},
		{Name: "Arroz e Feijão", Price: 8.90, Category: "Acompanhamentos", Glyph: "🍚", Description: "Arroz branco e feijão carioca temperado"},
		{Name: "Mandioca Frita", Price: 14.90, Category: "Acompanhamentos", Glyph: "🥔", Description: "Mandioca dourada e crocante"},
		{Name: "Polenta Frita", Price: 13.90, Category: "Acompanhamentos", Glyph: "🌽", Description: "Polenta cremosa por dentro e crocante por fora"},

		// Bebidas
		{Name: "Refrigerante", Price: 6.90, Category: "Bebidas", Glyph: "🥤", Description: "Refrigerante gelado 350ml"},
		{Name: "Suco Natural", Price: 8.90, Category: "Bebidas", Glyph: "🧃", Description: "Suco natural de frutas 400ml"},
		{Name: "Água Mineral", Price: 4.90, Category: "Bebidas", Glyph: "💧", Description: "Água mineral sem gás 500ml"},
		{Name: "Cerveja", Price: 12.90, Category: "Bebidas", Glyph: "🍺", Description: "Cerveja gelada long neck 355ml"},
		{Name: "Café Expresso", Price: 5.90, Category: "Bebidas", Glyph: "☕", Description: "Café expresso tradicional"},
		{Name: "Cappuccino", Price: 8.90, Category: "Bebidas", Glyph: "☕", Description: "Cappuccino cremoso com canela"},
		{Name: "Milkshake", Price: 15.90, Category: "Bebidas", Glyph: "🥤", Description: "Milkshake cremoso - sabores: chocolate, morango ou baunilha"},

		// Sobremesas
		{Name: "Pudim de Leite", Price: 14.90, Category: "Sobremesas", Glyph: "🍮", Description: "Pudim cremoso com calda de caramelo"},
		{Name: "Brigadeiro Gourmet", Price: 8.90, Category: "Sobremesas", Glyph: "🍫", Description: "Brigadeiro artesanal com granulado belga"},
		{Name: "Sorvete", Price: 12.90, Category: "Sobremesas", Glyph: "🍨", Description: "Sorvete artesanal - sabores variados"},
		{Name: "Torta de Chocolate", Price: 16.90, Category: "Sobremesas", Glyph: "🍰", Description: "Fatia de torta de chocolate com cobertura"},
		{Name: "Cheesecake", Price: 18.90, Category: "Sobremesas", Glyph: "🍰", Description: "Cheesecake cremoso com calda de frutas vermelhas"},
		{Name: "Açaí na Tigela", Price: 22.90, Category: "Sobremesas", Glyph: "🍇", Description: "Açaí cremoso com granola, banana e mel"},
		{Name: "Petit Gateau", Price: 19.90, Category: "Sobremesas", Glyph: "🍫", Description: "Bolinho de chocolate quente com sorvete de baunilha"},

		// Entradas
		{Name: "Bruschetta", Price: 16.90, Category: "Entradas", Glyph: "🍞", Description: "Pão italiano com tomate, manjericão e azeite"},
		{Name: "Bolinho de Bacalhau", Price: 24.90, Category: "Entradas", Glyph: "🐟", Description: "Bolinhos crocantes de bacalhau com molho tártaro"},
		{Name: "Coxinha de Frango", Price: 8.90, Category: "Entradas", Glyph: "🍗", Description: "Coxinha tradicional de frango desfiado"},
		{Name: "Pastéis Variados", Price: 12.90, Category: "Entradas", Glyph: "🥟", Description: "Pastéis fritos - queijo, carne ou palmito"},
		{Name: "Pão de Alho", Price: 9.90, Category: "Entradas", Glyph: "🧄", Description: "Pão francês com alho e ervas, gratinado"},
	}
}
